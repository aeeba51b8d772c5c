package service

import (
	"context"

	"seely/internal/domain/entity"
)

// DiscoveryCache resolves provider metadata, fetching it at most once per issuer on success.
type DiscoveryCache interface {
	Get(ctx context.Context, issuerURL string) (*entity.ProviderMetadata, error)
}

// IdentityProvider is the OpenID Connect provider the service federates to.
type IdentityProvider interface {
	// AuthCodeURL builds the authorization redirect carrying state and the S256 challenge of codeVerifier.
	AuthCodeURL(ctx context.Context, state, codeVerifier string) (string, error)

	// Exchange redeems the authorization code and extracts the ID token claims.
	Exchange(ctx context.Context, code, codeVerifier string) (*entity.FederatedIdentity, error)

	// EndSessionURL builds the provider logout URL for idTokenHint.
	EndSessionURL(ctx context.Context, idTokenHint string) (string, error)
}

// FlowSecretGenerator produces the unguessable values of an authorization request.
type FlowSecretGenerator interface {
	NewState() (string, error)
	NewCodeVerifier() string
}
