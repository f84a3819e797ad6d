package middleware

import (
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware gates routes on a signed-in session. The session lives
// server-side, so there is nothing to parse from the request: the check is
// whether a credential is currently stored.
type SessionMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(authUC usecase.AuthUsecase) *SessionMiddleware {
	return &SessionMiddleware{authUC: authUC}
}

// RequireSession rejects the request when no session is established.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.authUC.Session(c.Request().Context())
		if err != nil {
			return response.HandleAppError(c, err)
		}
		if !session.Authenticated {
			return response.Unauthorized(c, "NOT_AUTHENTICATED", "Sign in to perform this action")
		}

		return next(c)
	}
}
