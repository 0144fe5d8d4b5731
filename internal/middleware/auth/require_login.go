package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fothel/collectorvault/internal/service"
)

const identityKey = "identity"

// RequireLogin validates the Authorization bearer header and stores the
// caller identity in the echo context for downstream handlers.
func RequireLogin(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "malformed authorization header")
			}

			ident, err := service.ParseAccessToken(raw, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(identityKey, ident)
			return next(c)
		}
	}
}
