package usecase

import "context"

// CheckoutUsecase defines the interface for converting the basket into an
// order.
type CheckoutUsecase interface {
	Checkout(ctx context.Context) (*CheckoutOutput, error)
}

// CheckoutOutput summarizes a completed checkout. RemoteID is zero when the
// deployment does not forward orders upstream.
type CheckoutOutput struct {
	OrderID    string  `json:"order_id"`
	RemoteID   int     `json:"remote_id,omitempty"`
	TotalItems int     `json:"total_items"`
	TotalPrice float64 `json:"total_price"`
}
