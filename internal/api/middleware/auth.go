package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ticklist/todo-api/internal/core/ports"
)

// TokenHeader is the request header carrying the session token on every
// protected call. The SPA client sends the raw token, no scheme prefix.
const TokenHeader = "X-Auth-Token"

// UserIDKey is the echo context key under which the resolved user id is
// stored for downstream handlers.
const UserIDKey = "user_id"

// Auth verifies the session token and injects the resolved user id into the
// request context. It touches no store; rejection happens before any
// handler runs. Missing and invalid tokens are the only two outcomes.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(TokenHeader)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}
