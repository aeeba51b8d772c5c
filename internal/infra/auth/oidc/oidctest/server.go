// Package oidctest runs an in-process OpenID Connect provider for tests.
package oidctest

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

const (
	keyID = "oidctest-key"

	// ValidCode is the only authorization code the token endpoint redeems.
	ValidCode = "valid-code"
)

// Server is a minimal provider: discovery, token, JWKS and end-session endpoints.
type Server struct {
	*httptest.Server

	clientID string
	key      *rsa.PrivateKey

	discoveryHits atomic.Int64
	tokenHits     atomic.Int64
	failDiscovery atomic.Bool
	omitIDToken   atomic.Bool

	mu            sync.Mutex
	subject       string
	username      string
	email         string
	codeChallenge string
	lastForm      url.Values
}

// NewServer starts a provider for clientID and closes it on test cleanup.
func NewServer(t testing.TB, clientID string) *Server {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}

	s := &Server{
		clientID: clientID,
		key:      key,
		subject:  "392de118-0c0c-40e4-a628-9b77b1354c42",
		username: "apinut555@gmail.com",
		email:    "apinut555@gmail.com",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /.well-known/openid-configuration", s.handleDiscovery)
	mux.HandleFunc("POST /protocol/openid-connect/token", s.handleToken)
	mux.HandleFunc("GET /protocol/openid-connect/certs", s.handleJWKS)
	mux.HandleFunc("GET /protocol/openid-connect/logout", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)

	return s
}

// Issuer is the issuer URL the discovery document advertises.
func (s *Server) Issuer() string { return s.URL }

// EndSessionEndpoint is the advertised logout endpoint.
func (s *Server) EndSessionEndpoint() string { return s.URL + "/protocol/openid-connect/logout" }

// DiscoveryRequests counts discovery document fetches.
func (s *Server) DiscoveryRequests() int { return int(s.discoveryHits.Load()) }

// TokenRequests counts token endpoint calls.
func (s *Server) TokenRequests() int { return int(s.tokenHits.Load()) }

// FailDiscovery makes the discovery endpoint answer 503.
func (s *Server) FailDiscovery(fail bool) { s.failDiscovery.Store(fail) }

// OmitIDToken makes the token endpoint answer without an id_token.
func (s *Server) OmitIDToken(omit bool) { s.omitIDToken.Store(omit) }

// SetUser sets the identity placed in issued ID tokens.
func (s *Server) SetUser(subject, preferredUsername, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subject, s.username, s.email = subject, preferredUsername, email
}

// ExpectCodeChallenge makes the token endpoint check code_verifier against challenge.
func (s *Server) ExpectCodeChallenge(challenge string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.codeChallenge = challenge
}

// LastTokenForm returns the form of the most recent token request.
func (s *Server) LastTokenForm() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastForm
}

// SignIDToken signs claims with the server key, filling iss, aud, iat and exp when absent.
func (s *Server) SignIDToken(t testing.TB, claims jwt.MapClaims) string {
	t.Helper()

	raw, err := s.signIDToken(claims)
	if err != nil {
		t.Fatalf("sign id token: %v", err)
	}

	return raw
}

func (s *Server) signIDToken(claims jwt.MapClaims) (string, error) {
	now := time.Now()
	defaults := jwt.MapClaims{
		"iss": s.URL,
		"aud": s.clientID,
		"iat": now.Unix(),
		"exp": now.Add(5 * time.Minute).Unix(),
	}
	for k, v := range defaults {
		if _, ok := claims[k]; !ok {
			claims[k] = v
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = keyID

	return token.SignedString(s.key)
}

func (s *Server) handleDiscovery(w http.ResponseWriter, _ *http.Request) {
	s.discoveryHits.Add(1)
	if s.failDiscovery.Load() {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"issuer":                                s.URL,
		"authorization_endpoint":                s.URL + "/protocol/openid-connect/auth",
		"token_endpoint":                        s.URL + "/protocol/openid-connect/token",
		"userinfo_endpoint":                     s.URL + "/protocol/openid-connect/userinfo",
		"jwks_uri":                              s.URL + "/protocol/openid-connect/certs",
		"end_session_endpoint":                  s.EndSessionEndpoint(),
		"id_token_signing_alg_values_supported": []string{"RS256"},
		"code_challenge_methods_supported":      []string{"S256"},
	})
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	s.tokenHits.Add(1)

	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})

		return
	}

	s.mu.Lock()
	s.lastForm = r.PostForm
	subject, username, email, challenge := s.subject, s.username, s.email, s.codeChallenge
	s.mu.Unlock()

	form := r.PostForm
	switch {
	case form.Get("grant_type") != "authorization_code":
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported_grant_type"})

		return
	case form.Get("client_id") != s.clientID:
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid_client"})

		return
	case form.Get("code") != ValidCode, form.Get("code_verifier") == "":
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_grant"})

		return
	case challenge != "" && oauth2.S256ChallengeFromVerifier(form.Get("code_verifier")) != challenge:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_grant", "error_description": "PKCE verification failed"})

		return
	}

	body := map[string]any{
		"access_token": "provider-access-token",
		"token_type":   "Bearer",
		"expires_in":   300,
	}
	if !s.omitIDToken.Load() {
		idToken, err := s.signIDToken(jwt.MapClaims{
			"sub":                subject,
			"preferred_username": username,
			"email":              email,
		})
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "server_error"})

			return
		}
		body["id_token"] = idToken
	}

	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleJWKS(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, jose.JSONWebKeySet{
		Keys: []jose.JSONWebKey{{
			Key:       &s.key.PublicKey,
			KeyID:     keyID,
			Algorithm: string(jose.RS256),
			Use:       "sig",
		}},
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
