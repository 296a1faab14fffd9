package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reviewhub/review-system/internal/core/domain"
	"github.com/reviewhub/review-system/internal/core/ports"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "review_session"

// LoadCurrentUser resolves the session cookie once per request and, when it
// maps to a live user, stores the identity in the echo context under
// "current_user". It always passes through: unauthenticated requests are
// not rejected here, only left unenriched.
func LoadCurrentUser(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user := resolveUser(c, sessions); user != nil {
				c.Set("current_user", user)
			}
			return next(c)
		}
	}
}

// RequireAuth rejects unauthenticated requests with a redirect to the
// sign-in entry point; the handler is never invoked. When LoadCurrentUser
// already resolved the identity, it is reused instead of resolving twice.
func RequireAuth(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get("current_user").(*domain.User)
			if user == nil {
				user = resolveUser(c, sessions)
			}
			if user == nil {
				return c.Redirect(http.StatusFound, "/")
			}
			c.Set("current_user", user)
			return next(c)
		}
	}
}

// RequireRole redirects home when the resolved user's role is not in the
// allow-set. Fail-closed and silent: no error page, just the redirect.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get("current_user").(*domain.User)
			if user == nil {
				return c.Redirect(http.StatusFound, "/")
			}
			if _, ok := allowed[user.Role]; !ok {
				return c.Redirect(http.StatusFound, "/")
			}
			return next(c)
		}
	}
}

// resolveUser maps the session cookie to a user, or nil when the cookie is
// absent, tampered with, expired, or references a deleted user.
func resolveUser(c echo.Context, sessions ports.SessionService) *domain.User {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}

	user, err := sessions.Resolve(c.Request().Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return user
}
