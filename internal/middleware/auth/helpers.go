package auth

import (
	"github.com/labstack/echo/v4"

	"github.com/fothel/collectorvault/internal/service"
)

func IdentityFrom(c echo.Context) *service.Identity {
	if v := c.Get(identityKey); v != nil {
		if ident, ok := v.(*service.Identity); ok {
			return ident
		}
	}
	return nil
}

// SetIdentity seeds the context directly, bypassing token parsing. Test use only.
func SetIdentity(c echo.Context, ident *service.Identity) {
	c.Set(identityKey, ident)
}
