package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"time-management.com/time-management/internal/services"
)

const callerIDKey = "caller_id"

// RequireAuth verifies the bearer token and stashes the caller id for
// handlers to pass explicitly into the services. No service below the
// HTTP layer reads identity out of ambient state.
func RequireAuth(auth *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			callerID, err := auth.VerifyToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(callerIDKey, callerID)
			return next(c)
		}
	}
}

// CallerID returns the identity established by RequireAuth; empty on
// unauthenticated routes.
func CallerID(c echo.Context) string {
	id, _ := c.Get(callerIDKey).(string)
	return id
}
