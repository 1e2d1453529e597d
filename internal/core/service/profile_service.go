package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/nexuslabs/social-api/internal/api/metrics"
	"github.com/nexuslabs/social-api/internal/core/domain"
	"github.com/nexuslabs/social-api/internal/core/ports"
)

const searchLimit = 10

// ProfileService implements username claiming and profile search.
type ProfileService struct {
	repo   ports.ProfileRepository
	logger zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger}
}

// ClaimUsername assigns username to the principal's profile, creating the
// profile on first claim. Claiming a name already owned by another principal
// fails with domain.ErrUsernameTaken; re-claiming your own name is a no-op
// upsert.
//
// The availability check and the write are two store calls: two principals
// racing for the same name can both pass the check. A unique index on
// profiles.username turns the losing write into a store conflict surfaced
// through the platform error path.
func (s *ProfileService) ClaimUsername(ctx context.Context, principal *domain.Principal, username string) (*domain.Profile, error) {
	if username == "" {
		return nil, domain.ErrUsernameRequired
	}

	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}
	if existing != nil && existing.ID != principal.ID {
		return nil, domain.ErrUsernameTaken
	}

	profile, err := s.repo.Upsert(ctx, &domain.Profile{ID: principal.ID, Username: username})
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", principal.ID).Msg("failed to upsert profile")
		return nil, err
	}

	metrics.UsernamesClaimedTotal.Inc()
	s.logger.Info().Str("user_id", principal.ID).Str("username", username).Msg("username claimed")
	return profile, nil
}

// SearchUsernames returns up to 10 profiles whose username starts with
// prefix, case-insensitively. An empty prefix matches everything. Ordering
// is whatever the store returns. This is the one unauthenticated profile
// operation.
func (s *ProfileService) SearchUsernames(ctx context.Context, prefix string) ([]domain.Profile, error) {
	return s.repo.Search(ctx, prefix, searchLimit)
}
