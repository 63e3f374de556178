package middleware

import (
	"errors"

	"github.com/deppfellow/anime-service/internal/errs"
	"github.com/deppfellow/anime-service/internal/metrics"
	"github.com/deppfellow/anime-service/internal/server"
	"github.com/deppfellow/anime-service/internal/service"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// AuthMiddleware authenticates with HTTP Basic and enforces the access policy.
type AuthMiddleware struct {
	server *server.Server
	auth   *service.AuthService
}

func NewAuthMiddleware(s *server.Server, auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		auth:   auth,
	}
}

// RequireAuth answers missing or bad credentials with 401 and a
// WWW-Authenticate challenge for the configured realm.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return echomw.BasicAuthWithConfig(echomw.BasicAuthConfig{
		Realm: auth.server.Config.Auth.Realm,
		Validator: func(username, password string, c echo.Context) (bool, error) {
			u, err := auth.auth.Authenticate(c.Request().Context(), username, password)
			if err != nil {
				if errors.Is(err, service.ErrInvalidCredentials) {
					metrics.RecordAuthFailure("unauthenticated")
					GetLogger(c).Warn().
						Str("function", "RequireAuth").
						Str("username", username).
						Msg("invalid credentials")
					return false, nil
				}
				return false, err
			}

			withUser(c, u)
			return true, nil
		},
	})(next)
}

// RequirePermission checks the authenticated user's authorities against the
// policy for the request method and path. It must run after RequireAuth.
func (auth *AuthMiddleware) RequirePermission(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		u := GetUser(c)
		if u == nil {
			return errs.NewUnauthorizedError("Unauthorized", false)
		}

		allowed, err := auth.auth.Authorize(u, c.Request().URL.Path, c.Request().Method)
		if err != nil {
			return err
		}

		if !allowed {
			metrics.RecordAuthFailure("forbidden")
			GetLogger(c).Warn().
				Str("function", "RequirePermission").
				Msg("access denied")
			return errs.NewForbiddenError("Access Denied", false)
		}

		return next(c)
	}
}
