package storeapi

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/internal/domain/service"
	"storefront/internal/infra/httpclient"

	"github.com/pkg/errors"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// authGateway exchanges credentials with the upstream.
type authGateway struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewAuthGateway is the constructor for authGateway.
func NewAuthGateway(client *httpclient.Client, logger *slog.Logger) service.AuthGateway {
	return &authGateway{client: client, logger: logger}
}

// Login posts the credentials with attachment disabled: this call is how the
// credential is obtained, so none exists yet.
func (g *authGateway) Login(ctx context.Context, username, password string) (string, error) {
	res, err := g.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   loginRequest{Username: username, Password: password},
	})
	if err != nil {
		return "", errors.Wrap(err, "login")
	}

	out, err := httpclient.Decode[loginResponse](res)
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", errors.New("login response carried no token")
	}

	return out.Token, nil
}

// VerifyAccess reads an authenticated collection purely to prove header
// attachment; the upstream may ignore the credential or reject it.
func (g *authGateway) VerifyAccess(ctx context.Context) (int, error) {
	res, err := g.client.Do(ctx, httpclient.Request{Path: "/carts", Auth: true})
	if err != nil {
		return 0, errors.Wrap(err, "verify access")
	}

	records, ok := res.Parsed.([]any)
	if !ok {
		return 0, nil
	}

	return len(records), nil
}
