package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("user").IsValid())
	assert.Equal(t, RoleAdmin, RoleOrDefault(RoleAdmin))
	assert.Equal(t, RoleUser, RoleOrDefault(""))
}

func TestFederatedIdentity_Username(t *testing.T) {
	tests := []struct {
		name     string
		identity FederatedIdentity
		want     string
	}{
		{"preferred username", FederatedIdentity{Subject: "sub-1", PreferredUsername: "apinut", Email: "a@b.c"}, "apinut"},
		{"email fallback", FederatedIdentity{Subject: "sub-1", Email: "a@b.c"}, "a@b.c"},
		{"subject fallback", FederatedIdentity{Subject: "sub-1"}, "sub-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.identity.Username())
		})
	}
}

func TestUser_CredentialKinds(t *testing.T) {
	local := &User{Username: "apinut", PasswordHash: "$2b$10$hash"}
	federated := &User{Username: "apinut555@gmail.com", ExternalSubjectID: "392de118"}

	assert.True(t, local.HasPassword())
	assert.False(t, local.IsFederated())
	assert.False(t, federated.HasPassword())
	assert.True(t, federated.IsFederated())
}
