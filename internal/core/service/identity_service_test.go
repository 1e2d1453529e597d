package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/nexuslabs/social-api/internal/core/domain"
)

// stubAuthPlatform implements ports.AuthPlatform; only UserFromToken matters
// for gateway tests.
type stubAuthPlatform struct {
	principal *domain.Principal
	err       error

	gotToken string
}

func (p *stubAuthPlatform) SignUp(context.Context, string, string) (*domain.Session, error) {
	return nil, errors.New("not implemented")
}

func (p *stubAuthPlatform) SignIn(context.Context, string, string) (*domain.Session, error) {
	return nil, errors.New("not implemented")
}

func (p *stubAuthPlatform) OAuthURL(string, string) (string, error) {
	return "", errors.New("not implemented")
}

func (p *stubAuthPlatform) ExchangeCode(context.Context, string) (*domain.Session, error) {
	return nil, errors.New("not implemented")
}

func (p *stubAuthPlatform) UserFromToken(_ context.Context, accessToken string) (*domain.Principal, error) {
	p.gotToken = accessToken
	return p.principal, p.err
}

func (p *stubAuthPlatform) SignOut(context.Context, string) error {
	return errors.New("not implemented")
}

func TestAuthenticate(t *testing.T) {
	t.Run("valid bearer token resolves the principal", func(t *testing.T) {
		want := &domain.Principal{ID: uuid.NewString(), Email: "alice@example.com"}
		platform := &stubAuthPlatform{principal: want}
		svc := NewIdentityService(platform)

		got, err := svc.Authenticate(context.Background(), "Bearer token-123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != want.ID {
			t.Errorf("got principal %q, want %q", got.ID, want.ID)
		}
		if platform.gotToken != "token-123" {
			t.Errorf("got token %q, want %q", platform.gotToken, "token-123")
		}
	})

	t.Run("scheme comparison is case-insensitive", func(t *testing.T) {
		platform := &stubAuthPlatform{principal: &domain.Principal{ID: uuid.NewString()}}
		svc := NewIdentityService(platform)

		if _, err := svc.Authenticate(context.Background(), "bearer token-123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		svc := NewIdentityService(&stubAuthPlatform{})

		if _, err := svc.Authenticate(context.Background(), ""); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("got err %v, want ErrUnauthenticated", err)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		svc := NewIdentityService(&stubAuthPlatform{})

		for _, header := range []string{"Bearer", "Bearer ", "Basic abc", "token-123"} {
			if _, err := svc.Authenticate(context.Background(), header); !errors.Is(err, domain.ErrUnauthenticated) {
				t.Errorf("header %q: got err %v, want ErrUnauthenticated", header, err)
			}
		}
	})

	t.Run("platform rejects the token", func(t *testing.T) {
		platform := &stubAuthPlatform{err: errors.New("invalid JWT")}
		svc := NewIdentityService(platform)

		if _, err := svc.Authenticate(context.Background(), "Bearer expired"); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("got err %v, want ErrUnauthenticated", err)
		}
	})

	t.Run("platform returns a principal without id", func(t *testing.T) {
		platform := &stubAuthPlatform{principal: &domain.Principal{}}
		svc := NewIdentityService(platform)

		if _, err := svc.Authenticate(context.Background(), "Bearer token-123"); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("got err %v, want ErrUnauthenticated", err)
		}
	})
}
