package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/nexuslabs/social-api/internal/api/handler"
	"github.com/nexuslabs/social-api/internal/core/ports"
)

// Auth resolves the bearer token through the identity gateway and injects
// the principal into the request context. The gateway is consulted on every
// request; there is no session cache.
func Auth(gateway ports.IdentityGateway) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := gateway.Authenticate(
				c.Request().Context(),
				c.Request().Header.Get("Authorization"),
			)
			if err != nil {
				return err
			}

			handler.SetPrincipal(c, principal)
			return next(c)
		}
	}
}
