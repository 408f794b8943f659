package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portalteam/client-portal/internal/core/domain"
)

// RBAC enforces role-based access control on the resolved caller.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, _ := c.Get(CallerKey).(*domain.Caller)
			if caller == nil {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			if _, ok := allowed[caller.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
