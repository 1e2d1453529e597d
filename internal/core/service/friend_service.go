package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nexuslabs/social-api/internal/api/metrics"
	"github.com/nexuslabs/social-api/internal/core/domain"
	"github.com/nexuslabs/social-api/internal/core/ports"
)

// FriendService maintains the symmetric friendship graph.
type FriendService struct {
	repo   ports.FriendRepository
	logger zerolog.Logger
}

func NewFriendService(repo ports.FriendRepository, logger zerolog.Logger) *FriendService {
	return &FriendService{repo: repo, logger: logger}
}

// AddFriend creates the friendship between the principal and friendID,
// writing both directed edges in one batch. The add is unilateral — there is
// no request/consent state — and idempotent.
func (s *FriendService) AddFriend(ctx context.Context, principal *domain.Principal, friendID string) error {
	if friendID == "" {
		return domain.ErrFriendIDRequired
	}
	if friendID == principal.ID {
		return domain.ErrSelfFriend
	}

	if err := s.repo.UpsertPair(ctx, principal.ID, friendID); err != nil {
		s.logger.Error().Err(err).Str("user_id", principal.ID).Str("friend_id", friendID).Msg("failed to add friend")
		return err
	}

	metrics.FriendshipsCreatedTotal.Inc()
	s.logger.Info().Str("user_id", principal.ID).Str("friend_id", friendID).Msg("friend added")
	return nil
}

// ListFriends returns the principal's adjacency list with each friend's
// profile projection. No friends is an empty slice, not an error.
func (s *FriendService) ListFriends(ctx context.Context, principal *domain.Principal) ([]domain.Friend, error) {
	return s.repo.ListByUser(ctx, principal.ID)
}
