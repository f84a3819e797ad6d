// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalog service.CatalogGateway
	logger  *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	catalog service.CatalogGateway,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		catalog: catalog,
		logger:  logger,
	}
}

func (srv *catalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := srv.catalog.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id int) (*entity.Product, error) {
	product, err := srv.catalog.GetProduct(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get product %d", id)
	}

	return product, nil
}

// SearchProducts filters the full catalog by a case-insensitive substring
// match on title and category. The upstream has no search endpoint, so the
// filtering happens here.
func (srv *catalogService) SearchProducts(ctx context.Context, query string) ([]entity.Product, error) {
	products, err := srv.catalog.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return products, nil
	}

	matched := make([]entity.Product, 0, len(products))
	for _, product := range products {
		if strings.Contains(strings.ToLower(product.Title), needle) ||
			strings.Contains(strings.ToLower(product.Category), needle) {
			matched = append(matched, product)
		}
	}

	srv.logger.Debug("Catalog search", slog.String("query", query), slog.Int("matches", len(matched)))

	return matched, nil
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := srv.catalog.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) ListProductsByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	products, err := srv.catalog.ListProductsByCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list products in %q", category)
	}

	return products, nil
}
