// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase defines the interface for product browsing operations.
type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	GetProduct(ctx context.Context, id int) (*entity.Product, error)
	SearchProducts(ctx context.Context, query string) ([]entity.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListProductsByCategory(ctx context.Context, category string) ([]entity.Product, error)
}
