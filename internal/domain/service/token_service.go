package service

import (
	"seely/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Identity is the subject a local token is issued for.
type Identity struct {
	Username string      `json:"username"`
	Role     entity.Role `json:"role"`
}

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Identity
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying local session tokens.
type TokenService interface {
	// Issue signs a new access and refresh token for the identity.
	Issue(identity Identity) (*entity.TokenPair, error)

	// VerifyAccessToken returns the claims of a valid access token.
	// It fails with ErrTokenExpired once exp has passed and ErrTokenInvalid otherwise.
	VerifyAccessToken(token string) (*Claims, error)

	// VerifyRefreshToken is VerifyAccessToken for refresh tokens.
	VerifyRefreshToken(token string) (*Claims, error)
}
