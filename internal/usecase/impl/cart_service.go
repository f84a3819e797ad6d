package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface. All mutations go through
// the repository's Update so concurrent requests serialize on its lock.
type cartService struct {
	carts   repository.CartRepository
	catalog service.CatalogGateway
	logger  *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	carts repository.CartRepository,
	catalog service.CatalogGateway,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		carts:   carts,
		catalog: catalog,
		logger:  logger,
	}
}

func (srv *cartService) GetCart(ctx context.Context) (*usecase.CartView, error) {
	cart, err := srv.carts.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart")
	}

	return usecase.NewCartView(cart), nil
}

// AddItem resolves the product before touching the basket, so an unknown id
// fails without a partial write. A zero quantity defaults to one.
func (srv *cartService) AddItem(ctx context.Context, input *usecase.AddItemInput) (*usecase.CartView, error) {
	qty := input.Quantity
	if qty == 0 {
		qty = 1
	}

	// 1. Resolve the product upstream
	product, err := srv.catalog.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve product %d", input.ProductID)
	}

	// 2. Accumulate onto the basket
	cart, err := srv.carts.Update(ctx, func(cart entity.Cart) entity.Cart {
		return cart.Add(*product, qty)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add item")
	}

	srv.logger.Info("Item added to cart",
		slog.Int("product_id", product.ID),
		slog.Int("quantity", qty),
		slog.Int("total_items", cart.TotalItems()))

	return usecase.NewCartView(cart), nil
}

func (srv *cartService) RemoveItem(ctx context.Context, productID int) (*usecase.CartView, error) {
	cart, err := srv.carts.Update(ctx, func(cart entity.Cart) entity.Cart {
		return cart.Remove(productID)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove item")
	}

	return usecase.NewCartView(cart), nil
}

func (srv *cartService) SetQuantity(ctx context.Context, input *usecase.SetQuantityInput) (*usecase.CartView, error) {
	cart, err := srv.carts.Update(ctx, func(cart entity.Cart) entity.Cart {
		return cart.SetQuantity(input.ProductID, input.Quantity)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set quantity")
	}

	return usecase.NewCartView(cart), nil
}

func (srv *cartService) ClearCart(ctx context.Context) (*usecase.CartView, error) {
	cart, err := srv.carts.Update(ctx, func(cart entity.Cart) entity.Cart {
		return cart.Clear()
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear cart")
	}

	return usecase.NewCartView(cart), nil
}
