package storeapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/httpclient"
	"storefront/internal/infra/secretstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatewayClient(t *testing.T, mux *http.ServeMux, token string) *httpclient.Client {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	store := secretstore.NewMemoryStore()
	if token != "" {
		require.NoError(t, store.Set(context.Background(), token))
	}

	return httpclient.NewWithBase(server.URL, store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCatalogGateway_ListProducts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"title":"backpack","price":109.95,"category":"men's clothing"}]`))
	})
	gateway := NewCatalogGateway(newGatewayClient(t, mux, ""), slog.New(slog.NewTextHandler(io.Discard, nil)))

	products, err := gateway.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "backpack", products[0].Title)
	assert.InDelta(t, 109.95, products[0].Price, 1e-9)
}

func TestCatalogGateway_GetProduct_UnknownIDIsNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products/999", func(w http.ResponseWriter, r *http.Request) {
		// The upstream answers unknown ids with 200 and a null body.
		w.Write([]byte("null"))
	})
	gateway := NewCatalogGateway(newGatewayClient(t, mux, ""), slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := gateway.GetProduct(context.Background(), 999)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogGateway_ListProductsByCategory_EscapesCategory(t *testing.T) {
	var gotPath string
	mux := http.NewServeMux()
	mux.HandleFunc("/products/category/", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`[]`))
	})
	gateway := NewCatalogGateway(newGatewayClient(t, mux, ""), slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := gateway.ListProductsByCategory(context.Background(), "men's clothing")

	require.NoError(t, err)
	assert.Equal(t, "/products/category/men%27s%20clothing", gotPath)
}

func TestAuthGateway_Login_ReturnsToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "mor_2314", body["username"])
		assert.Empty(t, r.Header.Get("Authorization"), "login must not attach a credential")
		w.Write([]byte(`{"token":"issued-token"}`))
	})
	gateway := NewAuthGateway(newGatewayClient(t, mux, "leftover"), slog.New(slog.NewTextHandler(io.Discard, nil)))

	token, err := gateway.Login(context.Background(), "mor_2314", "83r5^_")

	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
}

func TestAuthGateway_Login_UpstreamRejection(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"username or password is incorrect"}`))
	})
	gateway := NewAuthGateway(newGatewayClient(t, mux, ""), slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := gateway.Login(context.Background(), "mor_2314", "wrong")

	var upstreamErr *domainerrors.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusUnauthorized, upstreamErr.Status)
	assert.Equal(t, "username or password is incorrect", upstreamErr.Msg)
}

func TestAuthGateway_VerifyAccess_CountsRecordsAndAttaches(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /carts", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[{"id":1},{"id":2}]`))
	})
	gateway := NewAuthGateway(newGatewayClient(t, mux, "tok"), slog.New(slog.NewTextHandler(io.Discard, nil)))

	count, err := gateway.VerifyAccess(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestOrderGateway_SubmitCart(t *testing.T) {
	var gotAuth string
	var gotBody orderRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /carts", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"id":21}`))
	})
	gateway := NewOrderGateway(newGatewayClient(t, mux, "tok"), slog.New(slog.NewTextHandler(io.Discard, nil)))

	cart := entity.NewCart().Add(entity.Product{ID: 1, Price: 10}, 3)
	remoteID, err := gateway.SubmitCart(context.Background(), cart)

	require.NoError(t, err)
	assert.Equal(t, 21, remoteID)
	assert.Equal(t, "Bearer tok", gotAuth)
	require.Len(t, gotBody.Products, 1)
	assert.Equal(t, 1, gotBody.Products[0].ProductID)
	assert.Equal(t, 3, gotBody.Products[0].Quantity)
}
