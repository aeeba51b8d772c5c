// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "seely/internal/delivery/context"
	domainerrors "seely/internal/domain/errors"
	"seely/internal/domain/repository"
	"seely/internal/domain/service"
	"seely/internal/errors"
	"seely/internal/usecase"

	"go.uber.org/fx"
)

// placeholderPassword is hashed once at startup. Rejected usernames are compared against it
// so they take as long as a wrong password.
const placeholderPassword = "seely-login-placeholder"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger

	placeholderHash string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	placeholderHash, err := params.Hasher.Hash(placeholderPassword)
	if err != nil {
		params.Logger.Warn("Failed to hash login placeholder", slog.Any("error", err))
	}

	return &authService{
		userRepo:        params.UserRepo,
		hasher:          params.Hasher,
		tokenService:    params.TokenService,
		logger:          params.Logger,
		placeholderHash: placeholderHash,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies local credentials. Unknown users, federated-only users and wrong passwords
// all fail with the same ErrAuthenticationFailed.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.hasher.Check(input.Password, srv.placeholderHash)
		srv.log(ctx).Info("Login rejected", slog.String("username", input.Username), slog.String("reason", "unknown user"))

		return nil, domainerrors.ErrAuthenticationFailed
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !user.HasPassword() {
		srv.hasher.Check(input.Password, srv.placeholderHash)
		srv.log(ctx).Info("Login rejected", slog.String("username", input.Username), slog.String("reason", "no local password"))

		return nil, domainerrors.ErrAuthenticationFailed
	}
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("username", input.Username), slog.String("reason", "wrong password"))

		return nil, domainerrors.ErrAuthenticationFailed
	}

	tokens, err := srv.tokenService.Issue(service.Identity{Username: user.Username, Role: user.Role})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	srv.log(ctx).Info("User logged in", slog.String("username", user.Username))

	return &usecase.LoginOutput{Tokens: tokens, User: user}, nil
}

// Refresh re-issues a pair for the identity in a valid refresh token.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Info("Refresh rejected", slog.Any("error", err))

		return nil, errors.Join(domainerrors.ErrAuthenticationFailed, err)
	}

	tokens, err := srv.tokenService.Issue(claims.Identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	return &usecase.RefreshOutput{Tokens: tokens}, nil
}
