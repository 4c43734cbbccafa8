package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ticklist/todo-api/internal/api/middleware"
)

// ctxUserID extracts the user id injected by the Auth middleware. Presence
// proves the middleware ran; an empty id means a route was wired without it,
// which must fail closed rather than fall through to the service layer.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.UserIDKey).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
