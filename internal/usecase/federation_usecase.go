package usecase

import (
	"context"

	"seely/internal/domain/entity"
)

// CallbackInput carries the authorization response and the values stored when it was requested.
type CallbackInput struct {
	ReturnedState string
	StoredState   string
	Code          string
	CodeVerifier  string
	SessionState  string
	Issuer        string // the "iss" response parameter, when the provider sends one
}

// CallbackOutput is the local session issued for a federated login.
type CallbackOutput struct {
	Tokens       *entity.TokenPair
	IDToken      string
	User         *entity.User
	SessionState string
}

// FederationUsecase drives the Authorization Code flow with PKCE against the configured provider.
type FederationUsecase interface {
	BuildAuthorizationRequest(ctx context.Context) (*entity.AuthorizationRequest, error)
	HandleCallback(ctx context.Context, input *CallbackInput) (*CallbackOutput, error)
	BuildLogoutURL(ctx context.Context, idToken string) (string, error)
}
