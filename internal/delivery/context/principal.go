package context

import (
	"food/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetPrincipal stores the authenticated caller in echo.Context.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(echoPrincipalKey, principal)
}

// GetPrincipal returns the authenticated caller, or false on public routes.
func GetPrincipal(c echo.Context) (*entity.Principal, bool) {
	principal, ok := c.Get(echoPrincipalKey).(*entity.Principal)

	return principal, ok && principal != nil
}
