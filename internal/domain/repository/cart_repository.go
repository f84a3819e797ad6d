package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartRepository holds the session's single basket. The store owns the
// single-writer lock: Update applies the mutation atomically, so concurrent
// actions never interleave a read-modify-write.
type CartRepository interface {
	// Get returns the current basket.
	Get(ctx context.Context) (entity.Cart, error)

	// Update replaces the basket with fn applied to the current value and
	// returns the result. fn must be pure; it may run under the store's lock.
	Update(ctx context.Context, fn func(entity.Cart) entity.Cart) (entity.Cart, error)
}
