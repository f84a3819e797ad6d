package impl

import (
	"context"
	"io"
	"log/slog"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Gateway mocks ---

type mockCatalogGateway struct {
	mock.Mock
}

func (m *mockCatalogGateway) ListProducts(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *mockCatalogGateway) GetProduct(ctx context.Context, id int) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *mockCatalogGateway) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}

func (m *mockCatalogGateway) ListProductsByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Product), args.Error(1)
}

type mockAuthGateway struct {
	mock.Mock
}

func (m *mockAuthGateway) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)

	return args.String(0), args.Error(1)
}

func (m *mockAuthGateway) VerifyAccess(ctx context.Context) (int, error) {
	args := m.Called(ctx)

	return args.Int(0), args.Error(1)
}

type mockOrderGateway struct {
	mock.Mock
}

func (m *mockOrderGateway) SubmitCart(ctx context.Context, cart entity.Cart) (int, error) {
	args := m.Called(ctx, cart)

	return args.Int(0), args.Error(1)
}
