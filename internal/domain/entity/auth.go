package entity

// TokenPair is a locally issued, self-contained session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthorizationRequest is the transient state of a federated login.
// It is never stored server side; the caller round-trips State and CodeVerifier through the browser.
type AuthorizationRequest struct {
	State        string
	CodeVerifier string
	URL          string
}

// FederatedIdentity holds the identity claims extracted from a provider ID token.
type FederatedIdentity struct {
	Subject           string
	PreferredUsername string
	Email             string
	RawIDToken        string
}

// Username picks the local username candidate: preferred_username, then email, then subject.
func (f *FederatedIdentity) Username() string {
	switch {
	case f.PreferredUsername != "":
		return f.PreferredUsername
	case f.Email != "":
		return f.Email
	default:
		return f.Subject
	}
}

// ProviderMetadata is the discovered configuration of an OpenID Connect provider.
type ProviderMetadata struct {
	Issuer                string
	AuthorizationEndpoint string
	TokenEndpoint         string
	EndSessionEndpoint    string
	UserInfoEndpoint      string
	JWKSURI               string
	SigningAlgorithms     []string
}
