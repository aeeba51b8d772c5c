package usecase

import (
	"context"

	"seely/internal/domain/entity"
)

// RegisterUserInput defines the data required to register a local account.
type RegisterUserInput struct {
	Username string
	Password string
}

// UserUsecase manages local accounts and profiles.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	GetProfile(ctx context.Context, username string) (*entity.User, error)
}
