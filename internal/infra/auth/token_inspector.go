// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtInspector reads claims from the stored bearer token without verifying
// the signature. The upstream issued the token and owns its validation; the
// claims are display data for the session endpoint only.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewTokenInspector is the constructor for jwtInspector.
func NewTokenInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

func (i *jwtInspector) Inspect(token string) (*entity.TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "parse bearer token")
	}

	info := &entity.TokenInfo{}

	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if user, ok := claims["user"].(string); ok {
		info.User = user
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		issued := iat.Time
		info.IssuedAt = &issued
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expire := exp.Time
		info.ExpireAt = &expire
	}

	return info, nil
}
