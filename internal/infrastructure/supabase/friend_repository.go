package supabase

import (
	"context"
	"fmt"

	"github.com/nexuslabs/social-api/internal/core/domain"
)

const friendsTable = "friends"

// FriendRepository implements ports.FriendRepository on the platform's
// friends table.
type FriendRepository struct {
	client *Client
}

func NewFriendRepository(client *Client) *FriendRepository {
	return &FriendRepository{client: client}
}

type friendEdge struct {
	UserID   string `json:"user_id"`
	FriendID string `json:"friend_id"`
}

type friendRow struct {
	FriendID string `json:"friend_id"`
	Profile  *struct {
		Username    string `json:"username"`
		DisplayName string `json:"display_name,omitempty"`
		AvatarURL   string `json:"avatar_url,omitempty"`
	} `json:"friend_profile"`
}

// UpsertPair writes both directions in one batch so the relation is stored
// symmetrically: either both edges land or the batch fails as a whole.
func (r *FriendRepository) UpsertPair(ctx context.Context, userID, friendID string) error {
	edges := []friendEdge{
		{UserID: userID, FriendID: friendID},
		{UserID: friendID, FriendID: userID},
	}

	_, err := r.client.From(friendsTable).
		Upsert(edges, "user_id,friend_id").
		Minimal().
		Execute(ctx)
	if err != nil {
		return fmt.Errorf("upsert friend edges: %w", err)
	}
	return nil
}

func (r *FriendRepository) ListByUser(ctx context.Context, userID string) ([]domain.Friend, error) {
	var rows []friendRow
	err := r.client.From(friendsTable).
		Select("friend_id, friend_profile:profiles!fk_friend(username, display_name, avatar_url)").
		Eq("user_id", userID).
		ExecuteInto(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}

	friends := make([]domain.Friend, 0, len(rows))
	for _, row := range rows {
		f := domain.Friend{FriendID: row.FriendID}
		if row.Profile != nil {
			f.Profile = domain.FriendProfile{
				Username:    row.Profile.Username,
				DisplayName: row.Profile.DisplayName,
				AvatarURL:   row.Profile.AvatarURL,
			}
		}
		friends = append(friends, f)
	}
	return friends, nil
}
