// Package handler implements the HTTP endpoints on top of the use cases.
package handler

import (
	"net/http"

	"seely/config"
	"seely/internal/delivery/api/response"
	"seely/internal/delivery/api/validator"
	deliverycontext "seely/internal/delivery/context"
	"seely/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
}

// AuthHandler serves local credential login and session endpoints
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	cookies *cookieJar
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		cookies: newCookieJar(params.Config),
	}
}

// LoginRequest represents the request body for a local login
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

// RefreshRequest represents the request body for a token refresh. The cookie is used when empty.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenResponse is the locally issued token pair
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LogoutResponse acknowledges a cleared session
type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WhoamiResponse describes the caller of an optionally authenticated request
type WhoamiResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
	Role          string `json:"role,omitempty"`
}

// Login verifies local credentials and starts a cookie session
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid login input", validator.FieldErrors(err))
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.cookies.SetSession(c, output.Tokens.AccessToken, output.Tokens.RefreshToken)

	return response.Success(c, http.StatusOK, TokenResponse{
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
	})
}

// Refresh exchanges a refresh token from the body or cookie for a new pair
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}

	refreshToken := req.RefreshToken
	if refreshToken == "" {
		refreshToken = h.cookies.Value(c, CookieRefreshToken)
	}
	if refreshToken == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "refreshToken is required")
	}

	output, err := h.authUC.Refresh(c.Request().Context(), &usecase.RefreshInput{RefreshToken: refreshToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.cookies.SetSession(c, output.Tokens.AccessToken, output.Tokens.RefreshToken)

	return response.Success(c, http.StatusOK, TokenResponse{
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
	})
}

// Logout clears the session cookies. Tokens stay valid until they expire.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.cookies.Clear(c, sessionCookies...)

	return response.Success(c, http.StatusOK, LogoutResponse{
		Success: true,
		Message: "Logout successful",
	})
}

// Whoami reports the caller when a valid access token is present
func (h *AuthHandler) Whoami(c echo.Context) error {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return response.Success(c, http.StatusOK, WhoamiResponse{Authenticated: false})
	}

	return response.Success(c, http.StatusOK, WhoamiResponse{
		Authenticated: true,
		Username:      claims.Username,
		Role:          claims.Role.String(),
	})
}
