package ports

import (
	"context"

	"github.com/nexuslabs/social-api/internal/core/domain"
)

// IdentityGateway resolves an Authorization header value to the authenticated
// principal. Every protected request goes through it; no session state is
// kept between calls.
type IdentityGateway interface {
	Authenticate(ctx context.Context, authorization string) (*domain.Principal, error)
}

// AuthPlatform is the external identity platform's auth API. Credentials are
// verified and issued there; this service only relays.
type AuthPlatform interface {
	SignUp(ctx context.Context, email, password string) (*domain.Session, error)
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	// OAuthURL returns the platform's provider-authorization URL the client
	// should be redirected to.
	OAuthURL(provider, redirectTo string) (string, error)
	ExchangeCode(ctx context.Context, code string) (*domain.Session, error)
	UserFromToken(ctx context.Context, accessToken string) (*domain.Principal, error)
	SignOut(ctx context.Context, accessToken string) error
}
