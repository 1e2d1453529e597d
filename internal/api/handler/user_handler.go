package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexuslabs/social-api/internal/core/ports"
)

// UserHandler handles the social-layer endpoints: username claims, profile
// search, the friend graph and message sending.
type UserHandler struct {
	profiles ports.ProfileService
	friends  ports.FriendService
	messages ports.MessageService
}

func NewUserHandler(profiles ports.ProfileService, friends ports.FriendService, messages ports.MessageService) *UserHandler {
	return &UserHandler{profiles: profiles, friends: friends, messages: messages}
}

// SetUsername handles POST /user/set-username.
//
// @Summary      Claim a unique username
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setUsernameRequest  true  "Desired username"
// @Success      200   {object}  setUsernameResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /user/set-username [post]
func (h *UserHandler) SetUsername(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req setUsernameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profiles.ClaimUsername(c.Request().Context(), principal, req.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, setUsernameResponse{
		Message: "Done! Your username is set",
		Profile: profile,
	})
}

// Search handles GET /user/search — the one unauthenticated profile
// operation.
//
// @Summary      Search users by username prefix
// @Tags         user
// @Produce      json
// @Param        q  query     string  false  "Username prefix (case-insensitive)"
// @Success      200  {object}  searchResponse
// @Failure      500  {object}  errorResponse
// @Router       /user/search [get]
func (h *UserHandler) Search(c echo.Context) error {
	users, err := h.profiles.SearchUsernames(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, searchResponse{Users: users})
}

// AddFriend handles POST /user/add-friend.
//
// @Summary      Add a friend
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addFriendRequest  true  "Friend to add"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /user/add-friend [post]
func (h *UserHandler) AddFriend(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req addFriendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.friends.AddFriend(c.Request().Context(), principal, req.FriendID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Friend added successfully"})
}

// Friends handles GET /user/friends.
//
// @Summary      List the authenticated user's friends
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  friendsResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /user/friends [get]
func (h *UserHandler) Friends(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	friends, err := h.friends.ListFriends(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, friendsResponse{Friends: friends})
}

// SendMessage handles POST /user/send-message.
//
// @Summary      Append a message to a conversation
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Message"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /user/send-message [post]
func (h *UserHandler) SendMessage(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.messages.SendMessage(c.Request().Context(), principal, req.ConversationID, req.Content); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "sent"})
}
