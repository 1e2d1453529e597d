package ports

import (
	"context"

	"github.com/nexuslabs/social-api/internal/core/domain"
)

// ProfileRepository defines persistence operations on the profiles table.
type ProfileRepository interface {
	// FindByUsername performs an exact, case-sensitive lookup. Returns
	// domain.ErrProfileNotFound when no profile has that username.
	FindByUsername(ctx context.Context, username string) (*domain.Profile, error)
	// Upsert inserts or updates the profile keyed by id and returns the
	// stored representation.
	Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	// Search matches usernames case-insensitively by prefix, returning at
	// most limit rows. An empty prefix matches all profiles.
	Search(ctx context.Context, prefix string, limit int) ([]domain.Profile, error)
}

// ProfileService defines the profile use cases.
type ProfileService interface {
	ClaimUsername(ctx context.Context, principal *domain.Principal, username string) (*domain.Profile, error)
	SearchUsernames(ctx context.Context, prefix string) ([]domain.Profile, error)
}
