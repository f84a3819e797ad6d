package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
//
// The credential repository is the durable source of truth; the session field
// is an in-memory mirror of it for cheap reads. The mirror starts in the
// restoring state and leaves it after the first Restore, whatever its outcome.
type authService struct {
	auth        service.AuthGateway
	credentials repository.CredentialRepository
	inspector   service.TokenInspector
	logger      *slog.Logger

	mu      sync.RWMutex
	session entity.Session
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	auth service.AuthGateway,
	credentials repository.CredentialRepository,
	inspector service.TokenInspector,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		auth:        auth,
		credentials: credentials,
		inspector:   inspector,
		logger:      logger,
		session:     entity.Session{Restoring: true},
	}
}

// SignIn exchanges credentials upstream, persists the issued token, and only
// then reports success. Persisting first means a sign-in the caller saw
// succeed always survives a restart.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SessionOutput, error) {
	// 1. Exchange credentials upstream
	token, err := srv.auth.Login(ctx, input.Username, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign in")
	}

	// 2. Persist the credential before reporting success
	if err := srv.credentials.Set(ctx, token); err != nil {
		srv.logger.Error("Failed to persist credential", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCredentialStoreFailed, err.Error())
	}

	// 3. Update the in-memory mirror
	srv.mu.Lock()
	srv.session = entity.Session{Token: token}
	srv.mu.Unlock()

	srv.logger.Info("Signed in", slog.String("username", input.Username))

	return srv.sessionOutput(), nil
}

// SignOut discards the stored credential and the in-memory session. Deleting
// an absent credential is not an error.
func (srv *authService) SignOut(ctx context.Context) error {
	if err := srv.credentials.Delete(ctx); err != nil && !errors.Is(err, repository.ErrCredentialNotFound) {
		return errors.Wrap(domainerrors.ErrCredentialStoreFailed, err.Error())
	}

	srv.mu.Lock()
	srv.session = entity.Session{}
	srv.mu.Unlock()

	srv.logger.Info("Signed out")

	return nil
}

// Restore loads a previously stored credential at startup. It always leaves
// the restoring state, found credential or not: a store failure downgrades to
// a warning and an anonymous session rather than blocking startup.
func (srv *authService) Restore(ctx context.Context) error {
	token, err := srv.credentials.Get(ctx)

	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.session.Restoring = false

	switch {
	case err == nil:
		srv.session.Token = token
		srv.logger.Info("Session restored from credential store")
	case errors.Is(err, repository.ErrCredentialNotFound):
		srv.logger.Debug("No stored credential to restore")
	default:
		srv.logger.Warn("Failed to read credential store, starting anonymous", slog.Any("error", err))
	}

	return nil
}

func (srv *authService) Session(_ context.Context) (*usecase.SessionOutput, error) {
	return srv.sessionOutput(), nil
}

// VerifyAccess makes an authenticated upstream probe. It requires a signed-in
// session so the result reflects the stored credential.
func (srv *authService) VerifyAccess(ctx context.Context) (*usecase.VerifyOutput, error) {
	srv.mu.RLock()
	authenticated := srv.session.IsAuthenticated()
	srv.mu.RUnlock()

	if !authenticated {
		return nil, domainerrors.ErrNotAuthenticated
	}

	records, err := srv.auth.VerifyAccess(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify access")
	}

	return &usecase.VerifyOutput{Records: records}, nil
}

// sessionOutput snapshots the mirror. Claim fields are best-effort: a token
// that does not parse as a JWT still counts as authenticated.
func (srv *authService) sessionOutput() *usecase.SessionOutput {
	srv.mu.RLock()
	session := srv.session
	srv.mu.RUnlock()

	out := &usecase.SessionOutput{
		Authenticated: session.IsAuthenticated(),
		Restoring:     session.Restoring,
	}
	if !session.IsAuthenticated() {
		return out
	}

	info, err := srv.inspector.Inspect(session.Token)
	if err != nil {
		srv.logger.Debug("Stored token is not an inspectable JWT", slog.Any("error", err))

		return out
	}

	out.Subject = info.Subject
	out.User = info.User
	out.IssuedAt = info.IssuedAt
	out.ExpireAt = info.ExpireAt

	return out
}
