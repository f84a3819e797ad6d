package entity

// CartItem is the basket's per-product record: the product data handed to Add
// at the time it was added, plus the accumulated quantity.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart maps product ID to its basket entry. The zero value is not usable;
// construct with NewCart.
//
// Every operation is a total function returning a new Cart value and leaving
// the receiver untouched, so a Cart handed out to a reader stays stable while
// the store applies the next action. No entry with quantity <= 0 is ever kept:
// such entries are removed, never stored as zero.
type Cart map[int]CartItem

// NewCart returns an empty basket.
func NewCart() Cart {
	return Cart{}
}

// Add accumulates qty onto the existing entry for the product, inserting a new
// entry when the product is not yet in the basket.
//
// qty is expected to be positive. Add is an accumulation, not a set, and does
// not validate or clamp: a non-positive qty flows into the stored quantity
// unchanged, matching the storefront's historical behavior.
func (c Cart) Add(product Product, qty int) Cart {
	next := c.copy()
	item := next[product.ID]
	item.Product = product
	item.Quantity += qty
	next[product.ID] = item

	return next
}

// Remove deletes the entry for productID. Removing an absent product returns
// an identical basket.
func (c Cart) Remove(productID int) Cart {
	if _, ok := c[productID]; !ok {
		return c
	}

	next := c.copy()
	delete(next, productID)

	return next
}

// SetQuantity replaces the quantity of an existing entry. A qty <= 0 removes
// the entry instead. Setting a quantity for a product that was never added is
// a no-op: SetQuantity does not implicitly insert.
func (c Cart) SetQuantity(productID, qty int) Cart {
	if qty <= 0 {
		return c.Remove(productID)
	}

	item, ok := c[productID]
	if !ok {
		return c
	}

	next := c.copy()
	item.Quantity = qty
	next[productID] = item

	return next
}

// Clear discards all entries.
func (c Cart) Clear() Cart {
	return NewCart()
}

// Items returns the entries as a slice. Order carries no meaning.
func (c Cart) Items() []CartItem {
	items := make([]CartItem, 0, len(c))
	for _, item := range c {
		items = append(items, item)
	}

	return items
}

// TotalItems sums the quantities of all entries.
func (c Cart) TotalItems() int {
	total := 0
	for _, item := range c {
		total += item.Quantity
	}

	return total
}

// TotalPrice sums quantity times unit price over all entries, using the
// product data each entry was given at add time.
func (c Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c {
		total += float64(item.Quantity) * item.Product.Price
	}

	return total
}

func (c Cart) copy() Cart {
	next := make(Cart, len(c)+1)
	for id, item := range c {
		next[id] = item
	}

	return next
}
