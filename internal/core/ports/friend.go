package ports

import (
	"context"

	"github.com/nexuslabs/social-api/internal/core/domain"
)

// FriendRepository defines persistence operations on the friends table.
type FriendRepository interface {
	// UpsertPair writes both directed edges (userID→friendID and
	// friendID→userID) in a single batched upsert. Either edge already
	// existing is not an error.
	UpsertPair(ctx context.Context, userID, friendID string) error
	// ListByUser returns all edges where user_id = userID, each joined with
	// the friend's profile projection.
	ListByUser(ctx context.Context, userID string) ([]domain.Friend, error)
}

// FriendService defines the friend-graph use cases.
type FriendService interface {
	AddFriend(ctx context.Context, principal *domain.Principal, friendID string) error
	ListFriends(ctx context.Context, principal *domain.Principal) ([]domain.Friend, error)
}
