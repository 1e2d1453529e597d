package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nexuslabs/social-api/internal/core/domain"
)

type stubProfileService struct {
	profile  *domain.Profile
	claimErr error

	gotUsername string
	gotPrefix   string
	results     []domain.Profile
}

func (s *stubProfileService) ClaimUsername(_ context.Context, _ *domain.Principal, username string) (*domain.Profile, error) {
	s.gotUsername = username
	return s.profile, s.claimErr
}

func (s *stubProfileService) SearchUsernames(_ context.Context, prefix string) ([]domain.Profile, error) {
	s.gotPrefix = prefix
	return s.results, nil
}

type stubFriendService struct {
	addErr      error
	gotFriendID string
	friends     []domain.Friend
}

func (s *stubFriendService) AddFriend(_ context.Context, _ *domain.Principal, friendID string) error {
	s.gotFriendID = friendID
	return s.addErr
}

func (s *stubFriendService) ListFriends(_ context.Context, _ *domain.Principal) ([]domain.Friend, error) {
	return s.friends, nil
}

type stubMessageService struct {
	sendErr            error
	gotConversationID  string
	gotContent         string
	gotSenderPrincipal *domain.Principal
}

func (s *stubMessageService) SendMessage(_ context.Context, principal *domain.Principal, conversationID, content string) error {
	s.gotSenderPrincipal = principal
	s.gotConversationID = conversationID
	s.gotContent = content
	return s.sendErr
}

// newTestContext builds an Echo context carrying an optional JSON body and,
// when principal is non-nil, the injected principal.
func newTestContext(t *testing.T, method, target, body string, principal *domain.Principal) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		SetPrincipal(c, principal)
	}
	return c, rec
}

func TestSetUsername(t *testing.T) {
	principal := &domain.Principal{ID: uuid.NewString()}

	t.Run("success", func(t *testing.T) {
		profiles := &stubProfileService{profile: &domain.Profile{ID: principal.ID, Username: "alice"}}
		h := NewUserHandler(profiles, &stubFriendService{}, &stubMessageService{})

		c, rec := newTestContext(t, http.MethodPost, "/user/set-username", `{"username":"alice"}`, principal)
		if err := h.SetUsername(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("got status %d, want 200", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Done! Your username is set") {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
		if profiles.gotUsername != "alice" {
			t.Errorf("got username %q, want %q", profiles.gotUsername, "alice")
		}
	})

	t.Run("no principal in context", func(t *testing.T) {
		h := NewUserHandler(&stubProfileService{}, &stubFriendService{}, &stubMessageService{})

		c, _ := newTestContext(t, http.MethodPost, "/user/set-username", `{"username":"alice"}`, nil)
		if err := h.SetUsername(c); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("got err %v, want ErrUnauthenticated", err)
		}
	})

	t.Run("missing username fails validation", func(t *testing.T) {
		h := NewUserHandler(&stubProfileService{}, &stubFriendService{}, &stubMessageService{})

		c, _ := newTestContext(t, http.MethodPost, "/user/set-username", `{}`, principal)
		err := h.SetUsername(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("got err %v, want a 400 HTTPError", err)
		}
	})

	t.Run("conflict bubbles up", func(t *testing.T) {
		profiles := &stubProfileService{claimErr: domain.ErrUsernameTaken}
		h := NewUserHandler(profiles, &stubFriendService{}, &stubMessageService{})

		c, _ := newTestContext(t, http.MethodPost, "/user/set-username", `{"username":"alice"}`, principal)
		if err := h.SetUsername(c); !errors.Is(err, domain.ErrUsernameTaken) {
			t.Fatalf("got err %v, want ErrUsernameTaken", err)
		}
	})
}

func TestSearch(t *testing.T) {
	profiles := &stubProfileService{
		results: []domain.Profile{{Username: "alice"}, {Username: "alan"}},
	}
	h := NewUserHandler(profiles, &stubFriendService{}, &stubMessageService{})

	c, rec := newTestContext(t, http.MethodGet, "/user/search?q=al", "", nil)
	if err := h.Search(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("got status %d, want 200", rec.Code)
	}
	if profiles.gotPrefix != "al" {
		t.Errorf("got prefix %q, want %q", profiles.gotPrefix, "al")
	}
	if !strings.Contains(rec.Body.String(), `"users"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestAddFriend(t *testing.T) {
	principal := &domain.Principal{ID: uuid.NewString()}
	friendID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		friends := &stubFriendService{}
		h := NewUserHandler(&stubProfileService{}, friends, &stubMessageService{})

		c, rec := newTestContext(t, http.MethodPost, "/user/add-friend", `{"friend_id":"`+friendID+`"}`, principal)
		if err := h.AddFriend(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("got status %d, want 200", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Friend added successfully") {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
		if friends.gotFriendID != friendID {
			t.Errorf("got friend id %q, want %q", friends.gotFriendID, friendID)
		}
	})

	t.Run("missing friend_id fails validation", func(t *testing.T) {
		h := NewUserHandler(&stubProfileService{}, &stubFriendService{}, &stubMessageService{})

		c, _ := newTestContext(t, http.MethodPost, "/user/add-friend", `{}`, principal)
		err := h.AddFriend(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("got err %v, want a 400 HTTPError", err)
		}
	})

	t.Run("self add bubbles up", func(t *testing.T) {
		friends := &stubFriendService{addErr: domain.ErrSelfFriend}
		h := NewUserHandler(&stubProfileService{}, friends, &stubMessageService{})

		c, _ := newTestContext(t, http.MethodPost, "/user/add-friend", `{"friend_id":"`+principal.ID+`"}`, principal)
		if err := h.AddFriend(c); !errors.Is(err, domain.ErrSelfFriend) {
			t.Fatalf("got err %v, want ErrSelfFriend", err)
		}
	})
}

func TestFriends(t *testing.T) {
	principal := &domain.Principal{ID: uuid.NewString()}
	friends := &stubFriendService{
		friends: []domain.Friend{
			{FriendID: uuid.NewString(), Profile: domain.FriendProfile{Username: "bob"}},
		},
	}
	h := NewUserHandler(&stubProfileService{}, friends, &stubMessageService{})

	c, rec := newTestContext(t, http.MethodGet, "/user/friends", "", principal)
	if err := h.Friends(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("got status %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"bob"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestSendMessage(t *testing.T) {
	principal := &domain.Principal{ID: uuid.NewString()}
	conversationID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		messages := &stubMessageService{}
		h := NewUserHandler(&stubProfileService{}, &stubFriendService{}, messages)

		body := `{"conversation_id":"` + conversationID + `","content":"hello"}`
		c, rec := newTestContext(t, http.MethodPost, "/user/send-message", body, principal)
		if err := h.SendMessage(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("got status %d, want 200", rec.Code)
		}
		if messages.gotConversationID != conversationID || messages.gotContent != "hello" {
			t.Errorf("got (%q, %q)", messages.gotConversationID, messages.gotContent)
		}
		if messages.gotSenderPrincipal == nil || messages.gotSenderPrincipal.ID != principal.ID {
			t.Error("the principal should be forwarded as the sender")
		}
	})

	t.Run("missing content fails validation", func(t *testing.T) {
		h := NewUserHandler(&stubProfileService{}, &stubFriendService{}, &stubMessageService{})

		c, _ := newTestContext(t, http.MethodPost, "/user/send-message", `{"conversation_id":"`+conversationID+`"}`, principal)
		err := h.SendMessage(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("got err %v, want a 400 HTTPError", err)
		}
	})
}
