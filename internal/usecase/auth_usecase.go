package usecase

import (
	"context"
	"time"
)

// AuthUsecase defines the interface for session-related business operations.
type AuthUsecase interface {
	// SignIn exchanges credentials upstream and persists the issued token.
	SignIn(ctx context.Context, input *SignInInput) (*SessionOutput, error)
	// SignOut discards the stored credential and the in-memory session.
	SignOut(ctx context.Context) error
	// Restore loads a previously stored credential at startup.
	Restore(ctx context.Context) error
	// Session reports the current session state.
	Session(ctx context.Context) (*SessionOutput, error)
	// VerifyAccess makes an authenticated upstream call to prove the
	// stored credential is attached.
	VerifyAccess(ctx context.Context) (*VerifyOutput, error)
}

// --- Input DTOs ---

// SignInInput defines the credentials for an upstream sign-in.
type SignInInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// SessionOutput reports the session as seen by callers. Token claims are
// best-effort: a token that does not parse leaves them empty.
type SessionOutput struct {
	Authenticated bool       `json:"authenticated"`
	Restoring     bool       `json:"restoring"`
	Subject       string     `json:"subject,omitempty"`
	User          string     `json:"user,omitempty"`
	IssuedAt      *time.Time `json:"issued_at,omitempty"`
	ExpireAt      *time.Time `json:"expire_at,omitempty"`
}

// VerifyOutput reports the result of an authenticated probe call.
type VerifyOutput struct {
	Records int `json:"records"`
}
