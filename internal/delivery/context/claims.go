package context

import (
	"seely/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyClaims is the key for storing verified access token claims in echo.Context.
const KeyClaims ContextKey = "claims"

// SetClaims attaches the authenticated caller's claims to the request.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(string(KeyClaims), claims)
}

// GetClaims returns the claims set by the auth middleware, or nil for anonymous requests.
func GetClaims(c echo.Context) *service.Claims {
	if claims, ok := c.Get(string(KeyClaims)).(*service.Claims); ok {
		return claims
	}

	return nil
}
