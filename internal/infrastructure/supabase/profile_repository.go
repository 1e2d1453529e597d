package supabase

import (
	"context"
	"fmt"

	"github.com/nexuslabs/social-api/internal/core/domain"
)

const profilesTable = "profiles"

// ProfileRepository implements ports.ProfileRepository on the platform's
// profiles table.
type ProfileRepository struct {
	client *Client
}

func NewProfileRepository(client *Client) *ProfileRepository {
	return &ProfileRepository{client: client}
}

type profileRow struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

func (r *ProfileRepository) FindByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	var rows []profileRow
	err := r.client.From(profilesTable).
		Select("id, username, display_name, avatar_url").
		Eq("username", username).
		Limit(1).
		ExecuteInto(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrProfileNotFound
	}
	return rows[0].toDomain(), nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	// Only id and username are written; display fields set elsewhere survive
	// the merge.
	row := struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}{ID: profile.ID, Username: profile.Username}

	var rows []profileRow
	err := r.client.From(profilesTable).
		Upsert([]any{row}, "id").
		ExecuteInto(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	if len(rows) == 0 {
		return profile, nil
	}
	return rows[0].toDomain(), nil
}

func (r *ProfileRepository) Search(ctx context.Context, prefix string, limit int) ([]domain.Profile, error) {
	var rows []profileRow
	err := r.client.From(profilesTable).
		Select("id, username, display_name, avatar_url").
		ILike("username", prefix+"*").
		Limit(limit).
		ExecuteInto(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("search profiles: %w", err)
	}

	profiles := make([]domain.Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, *row.toDomain())
	}
	return profiles, nil
}

func (row profileRow) toDomain() *domain.Profile {
	return &domain.Profile{
		ID:          row.ID,
		Username:    row.Username,
		DisplayName: row.DisplayName,
		AvatarURL:   row.AvatarURL,
	}
}
