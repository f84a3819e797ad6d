// Package service defines contracts for outbound collaborators of the domain:
// the upstream store API gateways and token inspection. Implementations live
// under internal/infra.
package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogGateway is the read-only product data source backed by the upstream
// store API. None of its calls attach a credential.
type CatalogGateway interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	GetProduct(ctx context.Context, id int) (*entity.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListProductsByCategory(ctx context.Context, category string) ([]entity.Product, error)
}
