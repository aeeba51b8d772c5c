// Package oidc federates login to a single OpenID Connect provider.
package oidc

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"seely/config"
	deliverycontext "seely/internal/delivery/context"
	"seely/internal/domain/entity"
	domainerrors "seely/internal/domain/errors"
	"seely/internal/domain/service"
	"seely/internal/errors"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"go.uber.org/fx"
)

// discoveryDocument is the subset of the discovery document kept in ProviderMetadata.
type discoveryDocument struct {
	Issuer                string   `json:"issuer"`
	AuthorizationEndpoint string   `json:"authorization_endpoint"`
	TokenEndpoint         string   `json:"token_endpoint"`
	EndSessionEndpoint    string   `json:"end_session_endpoint"`
	UserInfoEndpoint      string   `json:"userinfo_endpoint"`
	JWKSURI               string   `json:"jwks_uri"`
	SigningAlgorithms     []string `json:"id_token_signing_alg_values_supported"`
}

type discovered struct {
	metadata *entity.ProviderMetadata
	provider *gooidc.Provider
}

// DiscoveryCache lazily fetches provider metadata and keeps it for the process lifetime.
// Failed fetches are not cached. Concurrent first fetches for one issuer may both hit the
// network; the last stored result wins.
type DiscoveryCache struct {
	client  *http.Client
	logger  *slog.Logger
	entries sync.Map // issuer URL -> *discovered
}

var _ service.DiscoveryCache = (*DiscoveryCache)(nil)

// DiscoveryParams holds dependencies for DiscoveryCache, injected by Fx.
type DiscoveryParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewDiscoveryCache creates a cache whose fetches are bounded by oauth2.httpTimeout.
func NewDiscoveryCache(params DiscoveryParams) *DiscoveryCache {
	return NewDiscoveryCacheWithClient(newHTTPClient(params.Config), params.Logger)
}

// NewDiscoveryCacheWithClient creates a cache that fetches through client.
func NewDiscoveryCacheWithClient(client *http.Client, logger *slog.Logger) *DiscoveryCache {
	return &DiscoveryCache{
		client: client,
		logger: logger,
	}
}

// Get returns the metadata for issuerURL, discovering it on the first successful call.
func (c *DiscoveryCache) Get(ctx context.Context, issuerURL string) (*entity.ProviderMetadata, error) {
	d, err := c.load(ctx, issuerURL)
	if err != nil {
		return nil, err
	}

	return d.metadata, nil
}

func (c *DiscoveryCache) load(ctx context.Context, issuerURL string) (*discovered, error) {
	if cached, ok := c.entries.Load(issuerURL); ok {
		return cached.(*discovered), nil
	}

	log := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	log.Debug("Discovering identity provider", slog.String("issuer", issuerURL))

	provider, err := gooidc.NewProvider(gooidc.ClientContext(ctx, c.client), issuerURL)
	if err != nil {
		log.Warn("Identity provider discovery failed", slog.String("issuer", issuerURL), slog.Any("error", err))

		return nil, errors.Wrapf(domainerrors.ErrUpstream, "discover %s: %v", issuerURL, err)
	}

	var doc discoveryDocument
	if err := provider.Claims(&doc); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrUpstream, "decode discovery document of %s: %v", issuerURL, err)
	}

	d := &discovered{
		metadata: &entity.ProviderMetadata{
			Issuer:                doc.Issuer,
			AuthorizationEndpoint: doc.AuthorizationEndpoint,
			TokenEndpoint:         doc.TokenEndpoint,
			EndSessionEndpoint:    doc.EndSessionEndpoint,
			UserInfoEndpoint:      doc.UserInfoEndpoint,
			JWKSURI:               doc.JWKSURI,
			SigningAlgorithms:     doc.SigningAlgorithms,
		},
		provider: provider,
	}
	c.entries.Store(issuerURL, d)

	return d, nil
}

func newHTTPClient(cfg *config.Config) *http.Client {
	client := &http.Client{}
	if cfg != nil && cfg.OAuth2 != nil {
		client.Timeout = cfg.OAuth2.HTTPTimeout
	}

	return client
}
