package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	carts        repository.CartRepository
	orders       service.OrderGateway
	submitOrders bool
	logger       *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	carts repository.CartRepository,
	orders service.OrderGateway,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		carts:        carts,
		orders:       orders,
		submitOrders: cfg.Store.SubmitOrders,
		logger:       logger,
	}
}

// Checkout snapshots the basket, optionally forwards it upstream, and clears
// it exactly once. The totals come from the snapshot, so the emptied basket
// cannot leak into the receipt. An upstream submit failure keeps the basket
// intact for retry.
func (srv *checkoutService) Checkout(ctx context.Context) (*usecase.CheckoutOutput, error) {
	// 1. Snapshot the basket
	cart, err := srv.carts.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart")
	}
	if len(cart) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	out := &usecase.CheckoutOutput{
		OrderID:    uuid.NewString(),
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}

	// 2. Forward upstream when the deployment submits orders
	if srv.submitOrders {
		remoteID, err := srv.orders.SubmitCart(ctx, cart)
		if err != nil {
			return nil, errors.Wrap(err, "failed to submit order")
		}
		out.RemoteID = remoteID
	}

	// 3. Clear the basket
	if _, err := srv.carts.Update(ctx, func(cart entity.Cart) entity.Cart {
		return cart.Clear()
	}); err != nil {
		return nil, errors.Wrap(err, "failed to clear cart after checkout")
	}

	srv.logger.Info("Checkout completed",
		slog.String("order_id", out.OrderID),
		slog.Int("total_items", out.TotalItems),
		slog.Float64("total_price", out.TotalPrice))

	return out, nil
}
