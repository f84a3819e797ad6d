package storeapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/httpclient"

	"github.com/pkg/errors"
)

type orderLine struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type orderRequest struct {
	UserID   int         `json:"userId"`
	Date     string      `json:"date"`
	Products []orderLine `json:"products"`
}

type orderResponse struct {
	ID int `json:"id"`
}

// orderGateway forwards checked-out baskets upstream.
type orderGateway struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewOrderGateway is the constructor for orderGateway.
func NewOrderGateway(client *httpclient.Client, logger *slog.Logger) service.OrderGateway {
	return &orderGateway{client: client, logger: logger}
}

// SubmitCart posts the basket as an authenticated call. The demo upstream
// does not resolve the bearer credential to an account, so the user field is
// a placeholder it accepts for any session.
func (g *orderGateway) SubmitCart(ctx context.Context, cart entity.Cart) (int, error) {
	lines := make([]orderLine, 0, len(cart))
	for _, item := range cart.Items() {
		lines = append(lines, orderLine{ProductID: item.Product.ID, Quantity: item.Quantity})
	}

	res, err := g.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/carts",
		Auth:   true,
		Body: orderRequest{
			UserID:   1,
			Date:     time.Now().UTC().Format("2006-01-02"),
			Products: lines,
		},
	})
	if err != nil {
		return 0, errors.Wrap(err, "submit cart")
	}

	out, err := httpclient.Decode[orderResponse](res)
	if err != nil {
		return 0, err
	}

	g.logger.Info("Cart submitted upstream", slog.Int("remote_id", out.ID), slog.Int("lines", len(lines)))

	return out.ID, nil
}
