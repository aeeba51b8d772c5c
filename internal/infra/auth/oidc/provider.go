package oidc

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"seely/config"
	deliverycontext "seely/internal/delivery/context"
	"seely/internal/domain/entity"
	domainerrors "seely/internal/domain/errors"
	"seely/internal/domain/service"
	"seely/internal/errors"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/fx"
	"golang.org/x/oauth2"
)

// idTokenClaims are the ID token claims the service reads.
type idTokenClaims struct {
	PreferredUsername string `json:"preferred_username"`
	Email             string `json:"email"`
	jwt.RegisteredClaims
}

// Provider implements service.IdentityProvider on top of go-oidc and x/oauth2.
type Provider struct {
	cfg       *config.OAuth2Config
	discovery *DiscoveryCache
	client    *http.Client
	logger    *slog.Logger
}

var _ service.IdentityProvider = (*Provider)(nil)

// ProviderParams holds dependencies for Provider, injected by Fx.
type ProviderParams struct {
	fx.In

	Config    *config.Config
	Discovery *DiscoveryCache
	Logger    *slog.Logger
}

// NewProvider is the constructor for Provider.
func NewProvider(params ProviderParams) service.IdentityProvider {
	return NewProviderWithClient(params.Config.OAuth2, params.Discovery, newHTTPClient(params.Config), params.Logger)
}

// NewProviderWithClient builds a Provider whose code exchange goes through client.
func NewProviderWithClient(cfg *config.OAuth2Config, discovery *DiscoveryCache, client *http.Client, logger *slog.Logger) *Provider {
	if cfg == nil {
		cfg = &config.OAuth2Config{}
	}

	return &Provider{
		cfg:       cfg,
		discovery: discovery,
		client:    client,
		logger:    logger,
	}
}

func (p *Provider) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

// AuthCodeURL builds the authorization request URL with the S256 challenge derived from codeVerifier.
func (p *Provider) AuthCodeURL(ctx context.Context, state, codeVerifier string) (string, error) {
	d, err := p.discover(ctx)
	if err != nil {
		return "", err
	}

	return p.oauth2Config(d.metadata).AuthCodeURL(state, oauth2.S256ChallengeOption(codeVerifier)), nil
}

// Exchange redeems code at the token endpoint and extracts the ID token identity.
func (p *Provider) Exchange(ctx context.Context, code, codeVerifier string) (*entity.FederatedIdentity, error) {
	d, err := p.discover(ctx)
	if err != nil {
		return nil, err
	}

	token, err := p.oauth2Config(d.metadata).Exchange(
		gooidc.ClientContext(ctx, p.client),
		code,
		oauth2.VerifierOption(codeVerifier),
	)
	if err != nil {
		attrs := []any{slog.Any("error", err)}
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			attrs = append(attrs, slog.String("oauthError", retrieveErr.ErrorCode))
		}
		p.log(ctx).Warn("Authorization code exchange failed", attrs...)

		return nil, errors.Wrapf(domainerrors.ErrUpstream, "exchange authorization code: %v", err)
	}

	rawIDToken, _ := token.Extra("id_token").(string)
	if rawIDToken == "" {
		return nil, domainerrors.ErrUpstream.WrapMessage("token response has no id_token")
	}

	claims, err := p.decodeIDToken(ctx, d.provider, rawIDToken)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, domainerrors.ErrUpstream.WrapMessage("id_token has no subject")
	}

	return &entity.FederatedIdentity{
		Subject:           claims.Subject,
		PreferredUsername: claims.PreferredUsername,
		Email:             claims.Email,
		RawIDToken:        rawIDToken,
	}, nil
}

// EndSessionURL builds the RP-initiated logout URL.
func (p *Provider) EndSessionURL(ctx context.Context, idTokenHint string) (string, error) {
	if idTokenHint == "" {
		return "", errors.New("no id token to hint")
	}

	d, err := p.discover(ctx)
	if err != nil {
		return "", err
	}
	if d.metadata.EndSessionEndpoint == "" {
		return "", errors.New("provider does not advertise end_session_endpoint")
	}

	endSession, err := url.Parse(d.metadata.EndSessionEndpoint)
	if err != nil {
		return "", errors.Wrap(err, "parse end_session_endpoint")
	}

	query := endSession.Query()
	query.Set("id_token_hint", idTokenHint)
	query.Set("client_id", p.cfg.ClientID)
	if p.cfg.PostLogoutRedirectURI != "" {
		query.Set("post_logout_redirect_uri", p.cfg.PostLogoutRedirectURI)
	}
	endSession.RawQuery = query.Encode()

	return endSession.String(), nil
}

func (p *Provider) discover(ctx context.Context) (*discovered, error) {
	if p.cfg.Issuer == "" {
		return nil, domainerrors.ErrFederationDisabled
	}

	return p.discovery.load(ctx, p.cfg.Issuer)
}

func (p *Provider) oauth2Config(metadata *entity.ProviderMetadata) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     p.cfg.ClientID,
		ClientSecret: p.cfg.ClientSecret,
		RedirectURL:  p.cfg.CallbackURL,
		Scopes:       p.cfg.Scopes(),
		Endpoint: oauth2.Endpoint{
			AuthURL:   metadata.AuthorizationEndpoint,
			TokenURL:  metadata.TokenEndpoint,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// decodeIDToken reads the ID token claims. With verifyIdToken set, the signature, issuer,
// audience and expiry are checked against the provider keys first.
func (p *Provider) decodeIDToken(ctx context.Context, provider *gooidc.Provider, rawIDToken string) (*idTokenClaims, error) {
	claims := &idTokenClaims{}

	if !p.cfg.ShouldVerifyIDToken() {
		if _, _, err := jwt.NewParser().ParseUnverified(rawIDToken, claims); err != nil {
			return nil, errors.Wrapf(domainerrors.ErrUpstream, "decode id_token: %v", err)
		}

		return claims, nil
	}

	verifier := provider.Verifier(&gooidc.Config{ClientID: p.cfg.ClientID})
	idToken, err := verifier.Verify(gooidc.ClientContext(ctx, p.client), rawIDToken)
	if err != nil {
		p.log(ctx).Warn("ID token verification failed", slog.Any("error", err))

		return nil, errors.Wrapf(domainerrors.ErrUpstream, "verify id_token: %v", err)
	}
	if err := idToken.Claims(claims); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrUpstream, "decode id_token claims: %v", err)
	}

	return claims, nil
}
