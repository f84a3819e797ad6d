package service

import "context"

// AuthGateway performs the upstream authentication operations.
type AuthGateway interface {
	// Login exchanges credentials for a bearer token. The call itself never
	// attaches a credential: it is how the credential is obtained.
	Login(ctx context.Context, username, password string) (string, error)

	// VerifyAccess issues an authenticated read purely to exercise credential
	// attachment, returning the number of records the upstream answered with.
	// The upstream decides whether a missing or stale credential is rejected.
	VerifyAccess(ctx context.Context) (int, error)
}
