package handler

import (
	"log/slog"
	"net/http"
	"time"

	"seely/config"
	"seely/internal/delivery/api/response"
	deliverycontext "seely/internal/delivery/context"
	domainerrors "seely/internal/domain/errors"
	"seely/internal/errors"
	"seely/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FederationHandlerParams holds dependencies for FederationHandler, injected by Fx.
type FederationHandlerParams struct {
	fx.In

	FederationUC usecase.FederationUsecase
	Config       *config.Config
	Logger       *slog.Logger
}

// FederationHandler serves the browser side of the OpenID Connect login and logout
type FederationHandler struct {
	federationUC          usecase.FederationUsecase
	postLogoutRedirectURI string
	cookies               *cookieJar
	logger                *slog.Logger
	now                   func() time.Time
}

// NewFederationHandler is the constructor for FederationHandler
func NewFederationHandler(params FederationHandlerParams) *FederationHandler {
	return &FederationHandler{
		federationUC:          params.FederationUC,
		postLogoutRedirectURI: params.Config.OAuth2.PostLogoutRedirectURI,
		cookies:               newCookieJar(params.Config),
		logger:                params.Logger,
		now:                   time.Now,
	}
}

// CallbackResponse is returned once a federated login has produced a local session
type CallbackResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"accessToken"`
	SessionState string `json:"sessionState,omitempty"`
}

// LogoutSuccessResponse is the landing payload after the provider ends its session
type LogoutSuccessResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (h *FederationHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}

// Login starts the Authorization Code flow and redirects the browser to the provider
func (h *FederationHandler) Login(c echo.Context) error {
	authRequest, err := h.federationUC.BuildAuthorizationRequest(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.cookies.SetFlow(c, authRequest.State, authRequest.CodeVerifier); err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, authRequest.URL)
}

// Callback completes the flow and starts a cookie session
func (h *FederationHandler) Callback(c echo.Context) error {
	storedState, codeVerifier := h.cookies.Flow(c)
	// The flow values are single use whatever the outcome.
	h.cookies.Clear(c, flowCookies...)

	if providerErr := c.QueryParam("error"); providerErr != "" {
		h.log(c).Warn("Provider returned an authorization error",
			slog.String("error", providerErr),
			slog.String("error_description", c.QueryParam("error_description")),
		)

		return response.HandleAppError(c, domainerrors.ErrAuthenticationFailed.WrapMessage("provider error: "+providerErr))
	}

	output, err := h.federationUC.HandleCallback(c.Request().Context(), &usecase.CallbackInput{
		ReturnedState: c.QueryParam("state"),
		StoredState:   storedState,
		Code:          c.QueryParam("code"),
		CodeVerifier:  codeVerifier,
		SessionState:  c.QueryParam("session_state"),
		Issuer:        c.QueryParam("iss"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.cookies.SetIDToken(c, output.IDToken)
	h.cookies.SetSession(c, output.Tokens.AccessToken, output.Tokens.RefreshToken)

	return response.Success(c, http.StatusOK, CallbackResponse{
		Message:      "Login successful",
		AccessToken:  output.Tokens.AccessToken,
		SessionState: output.SessionState,
	})
}

// Logout clears every auth cookie and sends the browser to the provider's end-session endpoint
func (h *FederationHandler) Logout(c echo.Context) error {
	idToken := h.cookies.Value(c, CookieIDToken)
	h.cookies.Clear(c, sessionCookies...)
	h.cookies.Clear(c, flowCookies...)

	target, err := h.federationUC.BuildLogoutURL(c.Request().Context(), idToken)
	if err != nil {
		h.log(c).Warn("Falling back to local logout redirect", slog.Any("error", err))
		target = h.postLogoutRedirectURI
	}
	if target == "" {
		target = "/"
	}

	return c.Redirect(http.StatusFound, target)
}

// LogoutSuccess is the post-logout landing endpoint
func (h *FederationHandler) LogoutSuccess(c echo.Context) error {
	h.cookies.Clear(c, sessionCookies...)
	h.cookies.Clear(c, flowCookies...)

	return response.Success(c, http.StatusOK, LogoutSuccessResponse{
		Success:   true,
		Message:   "Logout successful",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}
