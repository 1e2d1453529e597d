package handler

import "github.com/nexuslabs/social-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth requests / responses ---

type credentialsRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type oauthRedirectRequest struct {
	RedirectTo string `json:"redirect_to"`
}

type signupResponse struct {
	Message string          `json:"message"`
	Data    *domain.Session `json:"data,omitempty"`
}

type loginResponse struct {
	Message string          `json:"message"`
	Session *domain.Session `json:"session,omitempty"`
}

type oauthURLResponse struct {
	URL string `json:"url"`
}

type callbackResponse struct {
	Message string            `json:"message"`
	Session *domain.Session   `json:"session,omitempty"`
	User    *domain.Principal `json:"user,omitempty"`
}

type profileEnvelope struct {
	User *domain.Principal `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Social requests / responses ---

type setUsernameRequest struct {
	Username string `json:"username" validate:"required"`
}

type setUsernameResponse struct {
	Message string          `json:"message"`
	Profile *domain.Profile `json:"profile,omitempty"`
}

type searchResponse struct {
	Users []domain.Profile `json:"users"`
}

type addFriendRequest struct {
	FriendID string `json:"friend_id" validate:"required"`
}

type friendsResponse struct {
	Friends []domain.Friend `json:"friends"`
}

type sendMessageRequest struct {
	ConversationID string `json:"conversation_id" validate:"required"`
	Content        string `json:"content"         validate:"required"`
}
