package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: seely
  log:
    level: debug
http:
  port: 8080
secretKey:
  access: yaml-access-secret
token:
  accessTTL: 5m
oauth2:
  issuer: http://idp.local/realms/seely
  clientId: seely-api
  callbackUrl: http://localhost:8080/federated/callback
  postLogoutRedirectUri: http://localhost:3000
  verifyIdToken: false
cookie:
  secure: false
`

func writeTestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))

	return dir
}

func TestLoadWithEnv_YAMLAndEnvOverrides(t *testing.T) {
	dir := writeTestConfig(t)
	t.Chdir(dir)
	t.Setenv("OAUTH2_CLIENT_SECRET", "env-client-secret")
	t.Setenv("OAUTH2_CLIENT_ID", "env-client")
	t.Setenv("TOKEN_ACCESS_TTL", "2m")
	t.Setenv("COOKIE_HASH_KEY", "env-cookie-key")
	t.Setenv("POSTGRES_MASTER_PASSWORD", "env-db-password")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "seely", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "yaml-access-secret", cfg.SecretKey.Access)
	assert.Equal(t, 2*time.Minute, cfg.Token.AccessTTL)
	require.NotNil(t, cfg.OAuth2)
	assert.Equal(t, "env-client", cfg.OAuth2.ClientID)
	assert.Equal(t, "env-client-secret", cfg.OAuth2.ClientSecret)
	assert.False(t, cfg.OAuth2.ShouldVerifyIDToken())
	assert.Equal(t, "env-cookie-key", cfg.Cookie.HashKey)
	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "env-db-password", cfg.Postgres.Master.Password)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.ErrorContains(t, err, "config file config.yaml not found")
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{SecretKey: SecretKeyConfig{Access: "access"}}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "access", cfg.SecretKey.Refresh)
	assert.Equal(t, defaultAccessTTL, cfg.Token.AccessTTL)
	assert.Equal(t, defaultRefreshTTL, cfg.Token.RefreshTTL)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, []string{"openid", "profile", "email"}, cfg.OAuth2.Scopes())
	assert.Equal(t, defaultOAuth2HTTPTimeout, cfg.OAuth2.HTTPTimeout)
	assert.Equal(t, defaultFlowCookieMaxAge, cfg.OAuth2.FlowCookieMaxAge)
	assert.True(t, cfg.OAuth2.ShouldVerifyIDToken())
	assert.Equal(t, "/", cfg.Cookie.Path)
	assert.Equal(t, "lax", cfg.Cookie.SameSite)
	assert.Equal(t, deriveCookieHashKey("access"), cfg.Cookie.HashKey)
	assert.NotEqual(t, cfg.SecretKey.Access, cfg.Cookie.HashKey)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_ApplyDefaults_CookieHashKey(t *testing.T) {
	t.Run("derived from access secret", func(t *testing.T) {
		first := &Config{SecretKey: SecretKeyConfig{Access: "access"}}
		first.ApplyDefaults()
		second := &Config{SecretKey: SecretKeyConfig{Access: "access"}}
		second.ApplyDefaults()
		other := &Config{SecretKey: SecretKeyConfig{Access: "other-access"}}
		other.ApplyDefaults()

		assert.Len(t, first.Cookie.HashKey, 2*cookieHashKeySize)
		assert.Equal(t, first.Cookie.HashKey, second.Cookie.HashKey)
		assert.NotEqual(t, first.Cookie.HashKey, other.Cookie.HashKey)
		assert.NotContains(t, first.Cookie.HashKey, "access")
	})

	t.Run("explicit key kept", func(t *testing.T) {
		cfg := &Config{SecretKey: SecretKeyConfig{Access: "access"}, Cookie: CookieConfig{HashKey: "explicit"}}
		cfg.ApplyDefaults()

		assert.Equal(t, "explicit", cfg.Cookie.HashKey)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing access secret",
			mutate:  func(c *Config) { c.SecretKey.Access = "" },
			wantErr: "secretKey.access must be provided",
		},
		{
			name:    "refresh shorter than access",
			mutate:  func(c *Config) { c.Token.RefreshTTL = time.Minute },
			wantErr: "must not be shorter",
		},
		{
			name:    "issuer without client id",
			mutate:  func(c *Config) { c.OAuth2.Issuer = "http://idp"; c.OAuth2.ClientID = "" },
			wantErr: "oauth2.clientId must be provided",
		},
		{
			name:    "issuer without callback",
			mutate:  func(c *Config) { c.OAuth2.Issuer = "http://idp"; c.OAuth2.ClientID = "seely" },
			wantErr: "oauth2.callbackUrl must be provided",
		},
		{
			name:    "unknown same site",
			mutate:  func(c *Config) { c.Cookie.SameSite = "sometimes" },
			wantErr: "unknown cookie.sameSite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{SecretKey: SecretKeyConfig{Access: "access"}}
			cfg.ApplyDefaults()
			tt.mutate(cfg)

			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}
