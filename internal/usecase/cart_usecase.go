package usecase

import (
	"context"
	"sort"

	"storefront/internal/domain/entity"
)

// CartUsecase defines the interface for basket operations.
type CartUsecase interface {
	GetCart(ctx context.Context) (*CartView, error)
	AddItem(ctx context.Context, input *AddItemInput) (*CartView, error)
	RemoveItem(ctx context.Context, productID int) (*CartView, error)
	SetQuantity(ctx context.Context, input *SetQuantityInput) (*CartView, error)
	ClearCart(ctx context.Context) (*CartView, error)
}

// --- Input DTOs ---

// AddItemInput defines the data required to add a product to the basket.
type AddItemInput struct {
	ProductID int `json:"product_id" validate:"required,min=1"`
	Quantity  int `json:"quantity" validate:"omitempty,min=1"`
}

// SetQuantityInput defines the data required to replace an entry's quantity.
type SetQuantityInput struct {
	ProductID int `json:"product_id" validate:"required,min=1"`
	Quantity  int `json:"quantity" validate:"min=0"`
}

// --- Output DTOs ---

// CartLine is one basket entry as presented to callers.
type CartLine struct {
	Product  entity.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Subtotal float64        `json:"subtotal"`
}

// CartView is the basket snapshot returned by every cart operation.
type CartView struct {
	Lines      []CartLine `json:"lines"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
}

// NewCartView flattens a basket into its presentation form. Lines are sorted
// by product ID so repeated reads render identically.
func NewCartView(cart entity.Cart) *CartView {
	view := &CartView{
		Lines:      make([]CartLine, 0, len(cart)),
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
	for _, item := range cart.Items() {
		view.Lines = append(view.Lines, CartLine{
			Product:  item.Product,
			Quantity: item.Quantity,
			Subtotal: float64(item.Quantity) * item.Product.Price,
		})
	}
	sort.Slice(view.Lines, func(i, j int) bool {
		return view.Lines[i].Product.ID < view.Lines[j].Product.ID
	})

	return view
}
