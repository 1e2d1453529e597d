package service

import (
	"context"
	"strings"

	"github.com/nexuslabs/social-api/internal/api/metrics"
	"github.com/nexuslabs/social-api/internal/core/domain"
	"github.com/nexuslabs/social-api/internal/core/ports"
)

// IdentityService is the identity gateway: it turns an Authorization header
// into a Principal by validating the bearer token against the platform.
// Stateless — every call hits the platform, nothing is cached.
type IdentityService struct {
	platform ports.AuthPlatform
}

func NewIdentityService(platform ports.AuthPlatform) *IdentityService {
	return &IdentityService{platform: platform}
}

// Authenticate extracts the bearer token and resolves it to a principal.
// Any failure — absent header, malformed scheme, token the platform rejects
// — is domain.ErrUnauthenticated; callers never learn which.
func (s *IdentityService) Authenticate(ctx context.Context, authorization string) (*domain.Principal, error) {
	if authorization == "" {
		metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
		return nil, domain.ErrUnauthenticated
	}

	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		metrics.AuthFailuresTotal.WithLabelValues("malformed_header").Inc()
		return nil, domain.ErrUnauthenticated
	}

	principal, err := s.platform.UserFromToken(ctx, parts[1])
	if err != nil || principal == nil || principal.ID == "" {
		metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
		return nil, domain.ErrUnauthenticated
	}

	return principal, nil
}
