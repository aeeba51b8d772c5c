package middleware

import (
	"strings"

	deliverycontext "seely/internal/delivery/context"
	"seely/internal/domain/entity"
	domainerrors "seely/internal/domain/errors"
	"seely/internal/domain/service"
	"seely/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
}

// AuthMiddleware guards routes with locally issued access tokens.
type AuthMiddleware struct {
	tokenService service.TokenService
}

// NewAuthMiddleware creates the bearer token guard.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: params.TokenService,
	}
}

// Authenticate rejects requests without a valid access token and attaches the verified claims.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.verify(c)
		if err != nil {
			return errors.Join(domainerrors.ErrAuthenticationFailed, err)
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// OptionalAuthenticate attaches the claims when a valid token is present and lets anonymous requests through.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, err := m.verify(c); err == nil {
			deliverycontext.SetClaims(c, claims)
		}

		return next(c)
	}
}

// RequireRole admits only callers whose token carries role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := deliverycontext.GetClaims(c)
			if claims == nil {
				return domainerrors.ErrUnauthenticated
			}
			if claims.Role != role {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) verify(c echo.Context) (*service.Claims, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("authorization header is not a bearer token")
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	claims, err := m.tokenService.VerifyAccessToken(token)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return claims, nil
}
