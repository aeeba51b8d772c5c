package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"seely/config"
	"seely/internal/delivery/api/middleware"
	"seely/internal/delivery/api/router"
	"seely/internal/delivery/api/router/handler"
	deliverycontext "seely/internal/delivery/context"
	"seely/internal/domain/entity"
	domainerrors "seely/internal/domain/errors"
	"seely/internal/domain/service"
	"seely/internal/infra/auth"
	mockUsecase "seely/internal/mocks/usecase"
	"seely/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type serverFixtures struct {
	echo         *echo.Echo
	tokenService service.TokenService
	authUC       *mockUsecase.MockAuthUsecase
	federationUC *mockUsecase.MockFederationUsecase
	userUC       *mockUsecase.MockUserUsecase
}

func createTestServer(t *testing.T) serverFixtures {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "api_test_access_secret_key_long_enough"},
		OAuth2:    &config.OAuth2Config{PostLogoutRedirectURI: "http://localhost:3000"},
	}
	cfg.ApplyDefaults()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	authUC := mockUsecase.NewMockAuthUsecase(t)
	federationUC := mockUsecase.NewMockFederationUsecase(t)
	userUC := mockUsecase.NewMockUserUsecase(t)

	lc := fxtest.NewLifecycle(t)
	srv, err := NewServer(ServerParams{
		Lc:     lc,
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			AuthHandler:       handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Config: cfg}),
			FederationHandler: handler.NewFederationHandler(handler.FederationHandlerParams{FederationUC: federationUC, Config: cfg, Logger: logger}),
			UserHandler:       handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC}),
			AuthMiddleware:    middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{TokenService: tokenService}),
		},
	})
	require.NoError(t, err)

	return serverFixtures{
		echo:         srv.(*apiServer).server,
		tokenService: tokenService,
		authUC:       authUC,
		federationUC: federationUC,
		userUC:       userUC,
	}
}

func (f serverFixtures) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func (f serverFixtures) bearer(t *testing.T, username string, role entity.Role) string {
	t.Helper()

	pair, err := f.tokenService.Issue(service.Identity{Username: username, Role: role})
	require.NoError(t, err)

	return "Bearer " + pair.AccessToken
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestServer_Health(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(mustData(t, rec)))
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_LoginThenProfile(t *testing.T) {
	f := createTestServer(t)

	pair, err := f.tokenService.Issue(service.Identity{Username: "apinut", Role: entity.RoleAdmin})
	require.NoError(t, err)

	f.authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "apinut", Password: "1234"}).
		Return(&usecase.LoginOutput{Tokens: pair, User: &entity.User{ID: 1, Username: "apinut", Role: entity.RoleAdmin}}, nil)
	f.userUC.EXPECT().
		GetProfile(mock.Anything, "apinut").
		Return(&entity.User{ID: 1, Username: "apinut", PasswordHash: "hash", Role: entity.RoleAdmin}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"apinut","password":"1234"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)

	var tokens handler.TokenResponse
	require.NoError(t, json.Unmarshal(mustData(t, rec), &tokens))
	assert.Len(t, rec.Result().Cookies(), 2)

	req = httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+tokens.AccessToken)
	rec = f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile handler.ProfileResponse
	require.NoError(t, json.Unmarshal(mustData(t, rec), &profile))
	assert.Equal(t, "apinut", profile.Username)
	assert.Equal(t, "ADMIN", profile.Role)
}

func TestServer_LoginWrongPassword(t *testing.T) {
	f := createTestServer(t)

	f.authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrAuthenticationFailed)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"apinut","password":"nope"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := f.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTHENTICATION_FAILED", errorCode(t, rec))
	assert.Empty(t, rec.Result().Cookies())
}

func TestServer_Guards(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/users/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTHENTICATION_FAILED", errorCode(t, rec))

	req := httptest.NewRequest(http.MethodGet, "/users/apinut", nil)
	req.Header.Set(echo.HeaderAuthorization, f.bearer(t, "john", entity.RoleUser))
	rec = f.do(req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, rec))

	f.userUC.EXPECT().GetProfile(mock.Anything, "john").Return(&entity.User{ID: 2, Username: "john", Role: entity.RoleUser}, nil)

	req = httptest.NewRequest(http.MethodGet, "/users/john", nil)
	req.Header.Set(echo.HeaderAuthorization, f.bearer(t, "apinut", entity.RoleAdmin))
	rec = f.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_RefreshTokenIsNotAnAccessToken(t *testing.T) {
	f := createTestServer(t)

	pair, err := f.tokenService.Issue(service.Identity{Username: "john", Role: entity.RoleUser})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+pair.RefreshToken)
	rec := f.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_Whoami(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/auth/whoami", nil))
	assert.JSONEq(t, `{"authenticated":false}`, string(mustData(t, rec)))

	req := httptest.NewRequest(http.MethodGet, "/auth/whoami", nil)
	req.Header.Set(echo.HeaderAuthorization, f.bearer(t, "kaewmunee", entity.RoleUser))
	rec = f.do(req)
	assert.JSONEq(t, `{"authenticated":true,"username":"kaewmunee","role":"USER"}`, string(mustData(t, rec)))
}

func TestServer_FederatedLogoutRedirect(t *testing.T) {
	f := createTestServer(t)

	f.federationUC.EXPECT().
		BuildLogoutURL(mock.Anything, "id-token-1").
		Return("http://idp.local/logout?id_token_hint=id-token-1", nil)

	req := httptest.NewRequest(http.MethodGet, "/federated/logout", nil)
	req.AddCookie(&http.Cookie{Name: handler.CookieIDToken, Value: "id-token-1"})
	rec := f.do(req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://idp.local/logout?id_token_hint=id-token-1", rec.Header().Get("Location"))
	assert.Len(t, rec.Result().Cookies(), 5)
}

func TestServer_UnknownRoute(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", errorCode(t, rec))
}

func mustData(t *testing.T, rec *httptest.ResponseRecorder) json.RawMessage {
	t.Helper()

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}

func TestServer_CORSAllowsConfiguredOriginWithCredentials(t *testing.T) {
	e := echo.New()
	e.Use(corsMiddleware([]string{"http://localhost:5173"}))
	e.GET("/auth/whoami", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/auth/whoami", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:5173")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))

	req = httptest.NewRequest(http.MethodGet, "/auth/whoami", nil)
	req.Header.Set(echo.HeaderOrigin, "http://evil.example")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
