// Package storeapi implements the domain gateways against the FakeStore-style
// upstream API through the request pipeline.
package storeapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/httpclient"

	"github.com/pkg/errors"
)

// catalogGateway serves product reads. None of its calls attach a credential.
type catalogGateway struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewCatalogGateway is the constructor for catalogGateway.
func NewCatalogGateway(client *httpclient.Client, logger *slog.Logger) service.CatalogGateway {
	return &catalogGateway{client: client, logger: logger}
}

func (g *catalogGateway) ListProducts(ctx context.Context) ([]entity.Product, error) {
	res, err := g.client.Do(ctx, httpclient.Request{Path: "/products"})
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	products, err := httpclient.Decode[[]entity.Product](res)
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (g *catalogGateway) GetProduct(ctx context.Context, id int) (*entity.Product, error) {
	res, err := g.client.Do(ctx, httpclient.Request{Path: fmt.Sprintf("/products/%d", id)})
	if err != nil {
		return nil, errors.Wrapf(err, "get product %d", id)
	}

	product, err := httpclient.Decode[entity.Product](res)
	if err != nil {
		return nil, err
	}

	// The upstream answers unknown ids with 200 and an empty or null body
	// rather than 404, so absence shows up as a zero record.
	if product.ID == 0 {
		return nil, domainerrors.ErrProductNotFound
	}

	return &product, nil
}

func (g *catalogGateway) ListCategories(ctx context.Context) ([]string, error) {
	res, err := g.client.Do(ctx, httpclient.Request{Path: "/products/categories"})
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}

	categories, err := httpclient.Decode[[]string](res)
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (g *catalogGateway) ListProductsByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	res, err := g.client.Do(ctx, httpclient.Request{
		Path: "/products/category/" + url.PathEscape(category),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "list products in %q", category)
	}

	products, err := httpclient.Decode[[]entity.Product](res)
	if err != nil {
		return nil, err
	}

	return products, nil
}
