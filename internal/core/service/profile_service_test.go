package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nexuslabs/social-api/internal/core/domain"
)

type stubProfileRepo struct {
	existing *domain.Profile
	findErr  error

	upserted  *domain.Profile
	upsertErr error

	searchPrefix string
	searchLimit  int
	searchResult []domain.Profile
}

func (r *stubProfileRepo) FindByUsername(_ context.Context, username string) (*domain.Profile, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if r.existing == nil || r.existing.Username != username {
		return nil, domain.ErrProfileNotFound
	}
	return r.existing, nil
}

func (r *stubProfileRepo) Upsert(_ context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}
	r.upserted = profile
	return profile, nil
}

func (r *stubProfileRepo) Search(_ context.Context, prefix string, limit int) ([]domain.Profile, error) {
	r.searchPrefix = prefix
	r.searchLimit = limit
	return r.searchResult, nil
}

func TestClaimUsername(t *testing.T) {
	principal := &domain.Principal{ID: uuid.NewString()}

	t.Run("claims a free username", func(t *testing.T) {
		repo := &stubProfileRepo{}
		svc := NewProfileService(repo, zerolog.Nop())

		profile, err := svc.ClaimUsername(context.Background(), principal, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profile.ID != principal.ID || profile.Username != "alice" {
			t.Errorf("got profile %+v, want id %q username %q", profile, principal.ID, "alice")
		}
		if repo.upserted == nil {
			t.Error("expected an upsert to be performed")
		}
	})

	t.Run("re-claiming your own username succeeds", func(t *testing.T) {
		repo := &stubProfileRepo{
			existing: &domain.Profile{ID: principal.ID, Username: "alice"},
		}
		svc := NewProfileService(repo, zerolog.Nop())

		if _, err := svc.ClaimUsername(context.Background(), principal, "alice"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.upserted == nil {
			t.Error("expected an idempotent upsert")
		}
	})

	t.Run("username owned by someone else conflicts", func(t *testing.T) {
		repo := &stubProfileRepo{
			existing: &domain.Profile{ID: uuid.NewString(), Username: "alice"},
		}
		svc := NewProfileService(repo, zerolog.Nop())

		_, err := svc.ClaimUsername(context.Background(), principal, "alice")
		if !errors.Is(err, domain.ErrUsernameTaken) {
			t.Fatalf("got err %v, want ErrUsernameTaken", err)
		}
		if repo.upserted != nil {
			t.Error("no write should happen on conflict")
		}
	})

	t.Run("empty username is rejected", func(t *testing.T) {
		repo := &stubProfileRepo{}
		svc := NewProfileService(repo, zerolog.Nop())

		_, err := svc.ClaimUsername(context.Background(), principal, "")
		if !errors.Is(err, domain.ErrUsernameRequired) {
			t.Fatalf("got err %v, want ErrUsernameRequired", err)
		}
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		boom := errors.New("store down")
		repo := &stubProfileRepo{findErr: boom}
		svc := NewProfileService(repo, zerolog.Nop())

		_, err := svc.ClaimUsername(context.Background(), principal, "alice")
		if !errors.Is(err, boom) {
			t.Fatalf("got err %v, want the repository error", err)
		}
	})
}

func TestSearchUsernames(t *testing.T) {
	repo := &stubProfileRepo{
		searchResult: []domain.Profile{{Username: "alice"}, {Username: "alan"}},
	}
	svc := NewProfileService(repo, zerolog.Nop())

	profiles, err := svc.SearchUsernames(context.Background(), "al")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 2 {
		t.Errorf("got %d profiles, want 2", len(profiles))
	}
	if repo.searchPrefix != "al" {
		t.Errorf("got prefix %q, want %q", repo.searchPrefix, "al")
	}
	if repo.searchLimit != searchLimit {
		t.Errorf("got limit %d, want %d", repo.searchLimit, searchLimit)
	}
}
