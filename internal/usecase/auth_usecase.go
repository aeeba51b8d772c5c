// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"seely/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the credentials of a local login.
type LoginInput struct {
	Username string
	Password string
}

// RefreshInput carries the refresh token to exchange for a new pair.
type RefreshInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// LoginOutput returns the issued session and the authenticated user.
type LoginOutput struct {
	Tokens *entity.TokenPair
	User   *entity.User
}

// RefreshOutput returns the re-issued session.
type RefreshOutput struct {
	Tokens *entity.TokenPair
}

// AuthUsecase authenticates local credentials and refreshes sessions.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
}
