package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nexuslabs/social-api/internal/core/domain"
	"github.com/nexuslabs/social-api/internal/core/ports"
)

// AuthHandler relays authentication calls to the external identity platform.
// Every endpoint here forwards input and relays the platform's result; no
// credentials or sessions are handled locally.
type AuthHandler struct {
	platform ports.AuthPlatform
	gateway  ports.IdentityGateway
}

func NewAuthHandler(platform ports.AuthPlatform, gateway ports.IdentityGateway) *AuthHandler {
	return &AuthHandler{platform: platform, gateway: gateway}
}

// Signup handles POST /auth/signup.
//
// @Summary      Register with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Credentials"
// @Success      200   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := h.platform.SignUp(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, signupResponse{
		Message: "Signup successful, check your email to confirm.",
		Data:    session,
	})
}

// Login handles POST /auth/login.
//
// @Summary      Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := h.platform.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Message: "Login successful", Session: session})
}

// GoogleRedirect handles GET /auth/auth/google — redirects the browser to
// the platform's Google authorization URL.
//
// @Summary      Start Google OAuth sign-in
// @Tags         auth
// @Param        redirectTo  query  string  false  "Callback URL"
// @Success      302
// @Failure      400  {object}  errorResponse
// @Router       /auth/auth/google [get]
func (h *AuthHandler) GoogleRedirect(c echo.Context) error {
	redirectTo := c.QueryParam("redirectTo")
	if redirectTo == "" {
		redirectTo = c.Request().Header.Get("Origin") + "/auth/callback"
	}

	authURL, err := h.platform.OAuthURL("google", redirectTo)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.Redirect(http.StatusFound, authURL)
}

// GoogleCallback handles GET /auth/auth/callback — exchanges the provider's
// authorization code for a session.
//
// @Summary      Google OAuth callback
// @Tags         auth
// @Produce      json
// @Param        code  query     string  true  "Authorization code"
// @Success      200   {object}  callbackResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/auth/callback [get]
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	if oauthErr := c.QueryParam("error"); oauthErr != "" {
		return echo.NewHTTPError(http.StatusBadRequest, oauthErr)
	}

	code := c.QueryParam("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "No authorization code provided")
	}

	session, err := h.platform.ExchangeCode(c.Request().Context(), code)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, callbackResponse{
		Message: "Google authentication successful",
		Session: session,
		User:    session.User,
	})
}

// GoogleURL handles POST /auth/signup/google and POST /auth/login/google —
// returns the authorization URL for frontend-driven redirection instead of
// redirecting server-side.
//
// @Summary      Get Google OAuth URL
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      oauthRedirectRequest  false  "Redirect override"
// @Success      200   {object}  oauthURLResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/signup/google [post]
func (h *AuthHandler) GoogleURL(c echo.Context) error {
	var req oauthRedirectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	redirectTo := req.RedirectTo
	if redirectTo == "" {
		redirectTo = c.Request().Header.Get("Origin") + "/auth/callback"
	}

	authURL, err := h.platform.OAuthURL("google", redirectTo)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, oauthURLResponse{URL: authURL})
}

// Profile handles GET /auth/profile — returns the user behind the bearer
// token.
//
// @Summary      Get the authenticated user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileEnvelope
// @Failure      401  {object}  errorResponse
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	principal, err := h.gateway.Authenticate(c.Request().Context(), c.Request().Header.Get("Authorization"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileEnvelope{User: principal})
}

// Logout handles POST /auth/logout — revokes the bearer token's session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := bearerToken(c.Request().Header.Get("Authorization"))
	if token == "" {
		return domain.ErrUnauthenticated
	}

	if err := h.platform.SignOut(c.Request().Context(), token); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Logout successful"})
}

func bearerToken(authorization string) string {
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
