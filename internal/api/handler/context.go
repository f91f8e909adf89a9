package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// ctxUserID extracts the authenticated user ID injected by the Auth
// middleware. A missing ID means the route was wired without the middleware;
// reject rather than proceed with an anonymous request.
func ctxUserID(c echo.Context) (int, error) {
	userID, ok := c.Get("user_id").(int)
	if !ok || userID <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
