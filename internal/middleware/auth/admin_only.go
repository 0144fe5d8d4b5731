package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fothel/collectorvault/internal/models"
)

// AdminOnly must run after RequireLogin. The client menu hides admin
// actions from regular users, but this check is the real gate.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ident := IdentityFrom(c)
		if ident == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
		}
		if ident.Role != models.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "access denied")
		}
		return next(c)
	}
}
