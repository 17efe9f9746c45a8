package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// UserContextKey is where the middleware stores the *SessionUser.
const UserContextKey = "session_user"

const sessionCookie = "session"

// Middleware guards a route group: it pulls the session token from the
// Authorization header or the session cookie, verifies it, loads the
// SessionUser and stores it in the request context.
func Middleware(adapter *Adapter, tokens *TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFromRequest(c)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			id, err := tokens.Parse(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}

			user, err := adapter.LoadUser(c.Request().Context(), id)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
			}
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown session user")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the SessionUser the middleware stored, or nil.
func CurrentUser(c echo.Context) *SessionUser {
	user, _ := c.Get(UserContextKey).(*SessionUser)
	return user
}

func tokenFromRequest(c echo.Context) string {
	header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return strings.TrimSpace(header[7:])
	}

	cookie, err := c.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
