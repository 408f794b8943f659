package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portalteam/client-portal/internal/api/middleware"
	"github.com/portalteam/client-portal/internal/core/domain"
)

// ctxCaller extracts the caller the Auth middleware resolved for this
// request. Its presence proves the middleware ran; a missing caller on
// a protected route means a wiring bug, answered with 401 rather than
// a panic downstream.
func ctxCaller(c echo.Context) (*domain.Caller, error) {
	caller, _ := c.Get(middleware.CallerKey).(*domain.Caller)
	if caller == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return caller, nil
}

// bearerToken returns the raw token from the Authorization header, or
// "" when absent or malformed. Used on routes where authorization is
// decided inside the service (the provisioning dual-path).
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}
