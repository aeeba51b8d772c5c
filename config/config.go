package config

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
	"golang.org/x/crypto/hkdf"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultAccessTTL          = 15 * time.Minute
	defaultRefreshTTL         = 7 * 24 * time.Hour
	defaultBcryptCost         = 10
	defaultOAuth2Scope        = "openid profile email"
	defaultOAuth2HTTPTimeout  = 10 * time.Second
	defaultFlowCookieMaxAge   = 10 * time.Minute
	defaultCookiePath         = "/"
	defaultCookieSameSite     = "lax"

	cookieHashKeyInfo = "seely flow cookie hash key"
	cookieHashKeySize = 32
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		CORS struct {
			AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		} `json:"cors" yaml:"cors"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Token TokenConfig `json:"token" yaml:"token"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	OAuth2 *OAuth2Config `json:"oauth2" yaml:"oauth2"`

	Cookie CookieConfig `json:"cookie" yaml:"cookie"`
}

// SecretKeyConfig holds the token signing secrets. Refresh falls back to Access when empty.
type SecretKeyConfig struct {
	Access  string `json:"access" yaml:"access"`
	Refresh string `json:"refresh" yaml:"refresh"`
}

// TokenConfig defines lifetimes of locally issued tokens
type TokenConfig struct {
	AccessTTL  time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// DatabaseConfig controls schema bootstrap on startup
type DatabaseConfig struct {
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	Seed        bool `json:"seed" yaml:"seed"`
}

// OAuth2Config describes the single federated OpenID Connect provider
type OAuth2Config struct {
	Issuer                string `json:"issuer" yaml:"issuer"`
	ClientID              string `json:"clientId" yaml:"clientId"`
	ClientSecret          string `json:"clientSecret" yaml:"clientSecret"`
	CallbackURL           string `json:"callbackUrl" yaml:"callbackUrl"`
	Scope                 string `json:"scope" yaml:"scope"`
	PostLogoutRedirectURI string `json:"postLogoutRedirectUri" yaml:"postLogoutRedirectUri"`

	// HTTPTimeout bounds discovery and code exchange round trips
	HTTPTimeout time.Duration `json:"httpTimeout" yaml:"httpTimeout"`

	// VerifyIDToken checks the ID token signature, issuer and audience against the provider keys.
	// Unset means true.
	VerifyIDToken *bool `json:"verifyIdToken" yaml:"verifyIdToken"`

	// LinkExistingAccounts attaches a new federated subject to a local-only account with the same username
	LinkExistingAccounts bool `json:"linkExistingAccounts" yaml:"linkExistingAccounts"`

	// FlowCookieMaxAge bounds the lifetime of the state and codeVerifier cookies
	FlowCookieMaxAge time.Duration `json:"flowCookieMaxAge" yaml:"flowCookieMaxAge"`
}

// Scopes splits the configured scope string
func (c *OAuth2Config) Scopes() []string {
	return strings.Fields(c.Scope)
}

// ShouldVerifyIDToken reports whether ID tokens are verified before their claims are read
func (c *OAuth2Config) ShouldVerifyIDToken() bool {
	return c.VerifyIDToken == nil || *c.VerifyIDToken
}

// CookieConfig defines the attributes of cookies set by the auth endpoints
type CookieConfig struct {
	Secure   bool   `json:"secure" yaml:"secure"`
	Path     string `json:"path" yaml:"path"`
	SameSite string `json:"sameSite" yaml:"sameSite"`
	HashKey  string `json:"hashKey" yaml:"hashKey"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	// Keys the file omits still resolve through the struct tags of T.
	knownKeys := overlayKeyTree(keyTreeOf(reflect.TypeOf(cfg).Elem()), koanfInstance.Raw())

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// OAUTH2_CLIENT_ID -> oauth2.clientId, SECRETKEY_ACCESS -> secretKey.access
			key := canonicalizeEnvKey(k, knownKeys)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills zero values with the service defaults.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.SecretKey.Refresh == "" {
		c.SecretKey.Refresh = c.SecretKey.Access
	}
	if c.Token.AccessTTL <= 0 {
		c.Token.AccessTTL = defaultAccessTTL
	}
	if c.Token.RefreshTTL <= 0 {
		c.Token.RefreshTTL = defaultRefreshTTL
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = defaultBcryptCost
	}

	if c.Database == nil {
		c.Database = &DatabaseConfig{}
	}

	if c.OAuth2 == nil {
		c.OAuth2 = &OAuth2Config{}
	}
	if strings.TrimSpace(c.OAuth2.Scope) == "" {
		c.OAuth2.Scope = defaultOAuth2Scope
	}
	if c.OAuth2.HTTPTimeout <= 0 {
		c.OAuth2.HTTPTimeout = defaultOAuth2HTTPTimeout
	}
	if c.OAuth2.FlowCookieMaxAge <= 0 {
		c.OAuth2.FlowCookieMaxAge = defaultFlowCookieMaxAge
	}

	if c.Cookie.Path == "" {
		c.Cookie.Path = defaultCookiePath
	}
	if c.Cookie.SameSite == "" {
		c.Cookie.SameSite = defaultCookieSameSite
	}
	if c.Cookie.HashKey == "" && c.SecretKey.Access != "" {
		c.Cookie.HashKey = deriveCookieHashKey(c.SecretKey.Access)
	}
}

// deriveCookieHashKey expands the access secret with HKDF-SHA256 under a cookie label.
func deriveCookieHashKey(accessSecret string) string {
	key := make([]byte, cookieHashKeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(accessSecret), nil, []byte(cookieHashKeyInfo)), key); err != nil {
		// HKDF-SHA256 only fails past 255 blocks of output.
		panic(err)
	}

	return hex.EncodeToString(key)
}

// Validate reports configuration that the service cannot start with.
func (c *Config) Validate() error {
	if c.SecretKey.Access == "" {
		return errors.New("secretKey.access must be provided")
	}

	if c.Token.RefreshTTL < c.Token.AccessTTL {
		return errors.Errorf("token.refreshTTL (%s) must not be shorter than token.accessTTL (%s)", c.Token.RefreshTTL, c.Token.AccessTTL)
	}

	if c.OAuth2 != nil && c.OAuth2.Issuer != "" {
		if c.OAuth2.ClientID == "" {
			return errors.New("oauth2.clientId must be provided when oauth2.issuer is set")
		}
		if c.OAuth2.CallbackURL == "" {
			return errors.New("oauth2.callbackUrl must be provided when oauth2.issuer is set")
		}
	}

	switch strings.ToLower(c.Cookie.SameSite) {
	case "lax", "strict", "none":
	default:
		return errors.Errorf("unknown cookie.sameSite: %s", c.Cookie.SameSite)
	}

	return nil
}

// keyTreeOf lists the yaml key paths of a struct type as nested maps; leaves are nil.
func keyTreeOf(t reflect.Type) map[string]any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	tree := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}

		fieldType := field.Type
		for fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}
		if fieldType.Kind() == reflect.Struct && fieldType != reflect.TypeFor[time.Time]() {
			tree[name] = keyTreeOf(fieldType)

			continue
		}
		tree[name] = nil
	}

	return tree
}

// overlayKeyTree merges loaded keys over known ones. A loaded key replaces a known key
// that differs only in case so the file's spelling is the one env overrides target.
func overlayKeyTree(known, loaded map[string]any) map[string]any {
	merged := make(map[string]any, len(known)+len(loaded))
	for key, value := range known {
		merged[key] = value
	}

	for key, value := range loaded {
		var knownChild map[string]any
		for knownKey, knownValue := range merged {
			if knownKey != key && normalizeToken(knownKey) == normalizeToken(key) {
				knownChild, _ = knownValue.(map[string]any)
				delete(merged, knownKey)
			}
		}
		if existing, ok := merged[key].(map[string]any); ok {
			knownChild = existing
		}

		loadedChild, isMap := value.(map[string]any)
		switch {
		case isMap:
			merged[key] = overlayKeyTree(knownChild, loadedChild)
		case knownChild != nil:
			merged[key] = knownChild
		default:
			merged[key] = value
		}
	}

	return merged
}

// canonicalizeEnvKey maps an upper snake env key onto the known YAML key path.
// Segments are matched greedily so that OAUTH2_CLIENT_ID resolves to oauth2.clientId.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.FieldsFunc(strings.ToLower(rawKey), func(r rune) bool { return r == '_' })
	canonical := make([]string, 0, len(segments))
	current := existing

	for i := 0; i < len(segments); {
		if matched, next, width, ok := findExistingSegment(current, segments[i:]); ok {
			canonical = append(canonical, matched)
			current = next
			i += width

			continue
		}

		canonical = append(canonical, segments[i])
		current = nil
		i++
	}

	return strings.Join(canonical, ".")
}

// findExistingSegment finds the key in current matching the longest run of leading segments.
func findExistingSegment(current map[string]any, segments []string) (matched string, next map[string]any, width int, ok bool) {
	if len(current) == 0 {
		return "", nil, 0, false
	}

	for width = len(segments); width > 0; width-- {
		needle := normalizeToken(strings.Join(segments[:width], ""))
		for key, value := range current {
			if normalizeToken(key) != needle {
				continue
			}

			child, _ := value.(map[string]any)

			return key, child, width, true
		}
	}

	return "", nil, 0, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Format: POSTGRES_REPLICAS_{index}_{HOST|PORT|USERNAME|PASSWORD}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
