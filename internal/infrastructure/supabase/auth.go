package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nexuslabs/social-api/internal/core/domain"
)

// AuthClient talks to the platform's auth API. It satisfies
// ports.AuthPlatform; all credential verification happens on the platform
// side and tokens stay opaque here.
type AuthClient struct {
	client *Client
}

// SignUp registers a new email/password user.
func (a *AuthClient) SignUp(ctx context.Context, email, password string) (*domain.Session, error) {
	return a.sessionRequest(ctx, "/signup", map[string]string{
		"email":    email,
		"password": password,
	})
}

// SignIn authenticates with email/password and returns the issued session.
func (a *AuthClient) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	return a.sessionRequest(ctx, "/token?grant_type=password", map[string]string{
		"email":    email,
		"password": password,
	})
}

// OAuthURL builds the provider-authorization URL the client is redirected to.
// The platform handles the whole OAuth dance; we only hand out the entry
// point.
func (a *AuthClient) OAuthURL(provider, redirectTo string) (string, error) {
	if provider == "" {
		return "", fmt.Errorf("supabase: provider is required")
	}
	q := url.Values{"provider": {provider}}
	if redirectTo != "" {
		q.Set("redirect_to", redirectTo)
	}
	return a.client.authURL + "/authorize?" + q.Encode(), nil
}

// ExchangeCode trades an authorization code for a session.
func (a *AuthClient) ExchangeCode(ctx context.Context, code string) (*domain.Session, error) {
	return a.sessionRequest(ctx, "/token?grant_type=pkce", map[string]string{
		"auth_code": code,
	})
}

// UserFromToken validates an access token by asking the platform who it
// belongs to. An invalid or expired token surfaces as a 401 *Error.
func (a *AuthClient) UserFromToken(ctx context.Context, accessToken string) (*domain.Principal, error) {
	respBody, status, err := a.client.authRequest(ctx, http.MethodGet, "/user", nil, accessToken)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, parseError(respBody, status)
	}

	var user platformUser
	if err := json.Unmarshal(respBody, &user); err != nil {
		return nil, fmt.Errorf("supabase: unmarshal user: %w", err)
	}
	if user.ID == "" {
		return nil, &Error{Code: "no_user", Message: "no user for token", StatusCode: http.StatusUnauthorized}
	}

	return &domain.Principal{ID: user.ID, Email: user.Email}, nil
}

// SignOut revokes the token's session on the platform.
func (a *AuthClient) SignOut(ctx context.Context, accessToken string) error {
	respBody, status, err := a.client.authRequest(ctx, http.MethodPost, "/logout", nil, accessToken)
	if err != nil {
		return err
	}
	if status >= 400 {
		return parseError(respBody, status)
	}
	return nil
}

func (a *AuthClient) sessionRequest(ctx context.Context, path string, payload map[string]string) (*domain.Session, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("supabase: marshal request: %w", err)
	}

	respBody, status, err := a.client.authRequest(ctx, http.MethodPost, path, body, "")
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, parseError(respBody, status)
	}

	var session platformSession
	if err := json.Unmarshal(respBody, &session); err != nil {
		return nil, fmt.Errorf("supabase: unmarshal session: %w", err)
	}
	return toDomainSession(&session), nil
}

func toDomainSession(s *platformSession) *domain.Session {
	out := &domain.Session{
		AccessToken:  s.AccessToken,
		TokenType:    s.TokenType,
		ExpiresIn:    s.ExpiresIn,
		RefreshToken: s.RefreshToken,
	}
	if s.User != nil {
		out.User = &domain.Principal{ID: s.User.ID, Email: s.User.Email}
	}
	return out
}
