// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"seely/config"
	"seely/internal/domain/entity"
	domainerrors "seely/internal/domain/errors"
	"seely/internal/domain/service"
	"seely/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	accessSecret  []byte           // Secret key for signing access tokens.
	refreshSecret []byte           // Secret key for signing refresh tokens.
	accessTTL     time.Duration    // Time-to-live for access tokens.
	refreshTTL    time.Duration    // Time-to-live for refresh tokens.
	issuer        string           // Value of the iss claim, the service name.
	now           func() time.Time // Clock used for iat, exp and validation.
}

// JWTOption customizes a jwtService.
type JWTOption func(*jwtService)

// WithClock overrides the wall clock, mainly for tests.
func WithClock(now func() time.Time) JWTOption {
	return func(s *jwtService) {
		s.now = now
	}
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return NewJWTServiceWithOptions(cfg)
}

// NewJWTServiceWithOptions builds the token service with extra options.
func NewJWTServiceWithOptions(cfg *config.Config, opts ...JWTOption) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	refreshSecret := cfg.SecretKey.Refresh
	if refreshSecret == "" {
		refreshSecret = cfg.SecretKey.Access
	}

	srv := &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     cfg.Token.AccessTTL,
		refreshTTL:    cfg.Token.RefreshTTL,
		issuer:        cfg.Env.ServiceName,
		now:           time.Now,
	}
	if srv.accessTTL <= 0 {
		srv.accessTTL = 15 * time.Minute
	}
	if srv.refreshTTL <= 0 {
		srv.refreshTTL = 7 * 24 * time.Hour
	}

	for _, opt := range opts {
		opt(srv)
	}

	return srv, nil
}

// Issue creates a new access token and refresh token for the identity.
func (s *jwtService) Issue(identity service.Identity) (*entity.TokenPair, error) {
	// NumericDate has second precision; truncating keeps exp exactly iat+ttl.
	issuedAt := s.now().Truncate(time.Second)

	accessToken, err := s.sign(identity, service.TokenTypeAccess, issuedAt, s.accessTTL, s.accessSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	refreshToken, err := s.sign(identity, service.TokenTypeRefresh, issuedAt, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign refresh token")
	}

	return &entity.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// VerifyAccessToken checks an access token signed with the access secret.
func (s *jwtService) VerifyAccessToken(token string) (*service.Claims, error) {
	return s.verify(token, service.TokenTypeAccess, s.accessSecret)
}

// VerifyRefreshToken checks a refresh token signed with the refresh secret.
func (s *jwtService) VerifyRefreshToken(token string) (*service.Claims, error) {
	return s.verify(token, service.TokenTypeRefresh, s.refreshSecret)
}

func (s *jwtService) sign(identity service.Identity, tokenType string, issuedAt time.Time, ttl time.Duration, secret []byte) (string, error) {
	claims := service.Claims{
		Identity: identity,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   identity.Username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (s *jwtService) verify(tokenString, tokenType string, secret []byte) (*service.Claims, error) {
	if tokenString == "" {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("empty token")
	}

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage("verify token")
		}

		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	if claims.Type != tokenType {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("unexpected token type " + claims.Type)
	}
	if claims.Username == "" {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token has no username")
	}

	return claims, nil
}
