package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/secretstore"
	"storefront/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// failingCredentialStore simulates a broken secret store.
type failingCredentialStore struct{}

func (failingCredentialStore) Get(context.Context) (string, error) {
	return "", errors.New("keychain unavailable")
}

func (failingCredentialStore) Set(context.Context, string) error {
	return errors.New("keychain unavailable")
}

func (failingCredentialStore) Delete(context.Context) error {
	return errors.New("keychain unavailable")
}

func newAuthService(gateway *mockAuthGateway, store repository.CredentialRepository) usecase.AuthUsecase {
	return NewAuthService(gateway, store, auth.NewTokenInspector(), newDiscardLogger())
}

func TestAuthService_StartsRestoring(t *testing.T) {
	srv := newAuthService(new(mockAuthGateway), secretstore.NewMemoryStore())

	session, err := srv.Session(context.Background())

	require.NoError(t, err)
	assert.True(t, session.Restoring)
	assert.False(t, session.Authenticated)
}

func TestAuthService_SignIn_PersistsCredential(t *testing.T) {
	gateway := new(mockAuthGateway)
	gateway.On("Login", context.Background(), "mor_2314", "83r5^_").Return("issued-token", nil)
	store := secretstore.NewMemoryStore()
	srv := newAuthService(gateway, store)

	session, err := srv.SignIn(context.Background(), &usecase.SignInInput{Username: "mor_2314", Password: "83r5^_"})

	require.NoError(t, err)
	assert.True(t, session.Authenticated)
	assert.False(t, session.Restoring)

	stored, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "issued-token", stored)
}

func TestAuthService_SignIn_StoreFailureIsReportedAndSessionStaysOut(t *testing.T) {
	gateway := new(mockAuthGateway)
	gateway.On("Login", context.Background(), "mor_2314", "83r5^_").Return("issued-token", nil)
	srv := newAuthService(gateway, failingCredentialStore{})

	_, err := srv.SignIn(context.Background(), &usecase.SignInInput{Username: "mor_2314", Password: "83r5^_"})

	assert.ErrorIs(t, err, domainerrors.ErrCredentialStoreFailed)

	session, sessErr := srv.Session(context.Background())
	require.NoError(t, sessErr)
	assert.False(t, session.Authenticated, "session must not report a credential that was never persisted")
}

func TestAuthService_SignIn_UpstreamRejection(t *testing.T) {
	gateway := new(mockAuthGateway)
	gateway.On("Login", context.Background(), "mor_2314", "wrong").
		Return("", domainerrors.NewUpstreamHTTPError(401, "username or password is incorrect", nil))
	srv := newAuthService(gateway, secretstore.NewMemoryStore())

	_, err := srv.SignIn(context.Background(), &usecase.SignInInput{Username: "mor_2314", Password: "wrong"})

	var upstreamErr *domainerrors.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, domainerrors.UpstreamKindHTTP, upstreamErr.Kind)
}

func TestAuthService_SignOut_DiscardsCredentialAndSession(t *testing.T) {
	gateway := new(mockAuthGateway)
	gateway.On("Login", mock.Anything, "mor_2314", "83r5^_").Return("issued-token", nil)
	store := secretstore.NewMemoryStore()
	srv := newAuthService(gateway, store)
	_, err := srv.SignIn(context.Background(), &usecase.SignInInput{Username: "mor_2314", Password: "83r5^_"})
	require.NoError(t, err)

	require.NoError(t, srv.SignOut(context.Background()))

	_, err = store.Get(context.Background())
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
	session, err := srv.Session(context.Background())
	require.NoError(t, err)
	assert.False(t, session.Authenticated)
}

func TestAuthService_SignOut_WithoutSessionIsNoError(t *testing.T) {
	srv := newAuthService(new(mockAuthGateway), secretstore.NewMemoryStore())

	assert.NoError(t, srv.SignOut(context.Background()))
}

func TestAuthService_Restore_LoadsStoredCredential(t *testing.T) {
	store := secretstore.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "stored-token"))
	srv := newAuthService(new(mockAuthGateway), store)

	require.NoError(t, srv.Restore(context.Background()))

	session, err := srv.Session(context.Background())
	require.NoError(t, err)
	assert.True(t, session.Authenticated)
	assert.False(t, session.Restoring)
}

func TestAuthService_Restore_EmptyStoreLeavesRestoring(t *testing.T) {
	srv := newAuthService(new(mockAuthGateway), secretstore.NewMemoryStore())

	require.NoError(t, srv.Restore(context.Background()))

	session, err := srv.Session(context.Background())
	require.NoError(t, err)
	assert.False(t, session.Authenticated)
	assert.False(t, session.Restoring, "restore must leave the restoring state even with nothing stored")
}

func TestAuthService_Restore_StoreFailureIsNonFatal(t *testing.T) {
	srv := newAuthService(new(mockAuthGateway), failingCredentialStore{})

	require.NoError(t, srv.Restore(context.Background()))

	session, err := srv.Session(context.Background())
	require.NoError(t, err)
	assert.False(t, session.Authenticated)
	assert.False(t, session.Restoring)
}

func TestAuthService_Session_ExposesTokenClaims(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "2",
		"user": "mor_2314",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	gateway := new(mockAuthGateway)
	gateway.On("Login", mock.Anything, "mor_2314", "83r5^_").Return(token, nil)
	srv := newAuthService(gateway, secretstore.NewMemoryStore())
	_, err = srv.SignIn(context.Background(), &usecase.SignInInput{Username: "mor_2314", Password: "83r5^_"})
	require.NoError(t, err)

	session, err := srv.Session(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2", session.Subject)
	assert.Equal(t, "mor_2314", session.User)
}

func TestAuthService_Session_OpaqueTokenStillAuthenticated(t *testing.T) {
	gateway := new(mockAuthGateway)
	gateway.On("Login", mock.Anything, "mor_2314", "83r5^_").Return("not-a-jwt", nil)
	srv := newAuthService(gateway, secretstore.NewMemoryStore())
	_, err := srv.SignIn(context.Background(), &usecase.SignInInput{Username: "mor_2314", Password: "83r5^_"})
	require.NoError(t, err)

	session, err := srv.Session(context.Background())

	require.NoError(t, err)
	assert.True(t, session.Authenticated)
	assert.Empty(t, session.Subject)
}

func TestAuthService_VerifyAccess_RequiresSession(t *testing.T) {
	srv := newAuthService(new(mockAuthGateway), secretstore.NewMemoryStore())

	_, err := srv.VerifyAccess(context.Background())

	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestAuthService_VerifyAccess_ReportsRecordCount(t *testing.T) {
	gateway := new(mockAuthGateway)
	gateway.On("Login", mock.Anything, "mor_2314", "83r5^_").Return("issued-token", nil)
	gateway.On("VerifyAccess", context.Background()).Return(7, nil)
	srv := newAuthService(gateway, secretstore.NewMemoryStore())
	_, err := srv.SignIn(context.Background(), &usecase.SignInInput{Username: "mor_2314", Password: "83r5^_"})
	require.NoError(t, err)

	out, err := srv.VerifyAccess(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, out.Records)
}
