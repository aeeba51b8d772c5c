package oidc

import (
	"crypto/rand"
	"encoding/base64"

	"seely/internal/domain/service"
	"seely/internal/errors"

	"golang.org/x/oauth2"
)

const stateEntropyBytes = 32

type flowSecretGenerator struct{}

// NewFlowSecretGenerator returns the generator for state and PKCE verifier values.
func NewFlowSecretGenerator() service.FlowSecretGenerator {
	return flowSecretGenerator{}
}

// NewState returns 32 random bytes, base64url encoded.
func (flowSecretGenerator) NewState() (string, error) {
	b := make([]byte, stateEntropyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "failed to generate state")
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// NewCodeVerifier returns an RFC 7636 verifier with 32 bytes of entropy.
func (flowSecretGenerator) NewCodeVerifier() string {
	return oauth2.GenerateVerifier()
}
