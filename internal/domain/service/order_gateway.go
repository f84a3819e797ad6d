package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderGateway forwards a checked-out basket to the upstream store API as an
// authenticated call. The demo upstream records the cart and answers with an
// identifier; nothing is ever charged.
type OrderGateway interface {
	SubmitCart(ctx context.Context, cart entity.Cart) (int, error)
}
