package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nexuslabs/social-api/internal/core/domain"
)

// principalKey is where the auth middleware stores the authenticated
// principal on the request context.
const principalKey = "principal"

// SetPrincipal attaches the authenticated principal to the Echo context.
// Called only by the auth middleware.
func SetPrincipal(c echo.Context, p *domain.Principal) {
	c.Set(principalKey, p)
}

// ctxPrincipal extracts the principal injected by the auth middleware.
// Presence proves the middleware ran; a protected handler reached without it
// is a routing bug and is treated as unauthenticated.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	p, _ := c.Get(principalKey).(*domain.Principal)
	if p == nil || p.ID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return p, nil
}
