package service

import "storefront/internal/domain/entity"

// TokenInspector reads display claims out of a bearer token without verifying
// it. Inspection never gates any operation.
type TokenInspector interface {
	Inspect(token string) (*entity.TokenInfo, error)
}
