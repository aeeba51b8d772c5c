package handler

import (
	"net/http"
	"strings"
	"time"

	"seely/config"
	"seely/internal/errors"

	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
)

// Cookie names shared with browser clients.
const (
	CookieAccessToken  = "accessToken"
	CookieRefreshToken = "refreshToken"
	CookieIDToken      = "idToken"
	CookieState        = "state"
	CookieCodeVerifier = "codeVerifier"
)

var (
	sessionCookies = []string{CookieAccessToken, CookieRefreshToken, CookieIDToken}
	flowCookies    = []string{CookieState, CookieCodeVerifier}
)

// cookieJar writes the session and login flow cookies with the configured attributes.
type cookieJar struct {
	path       string
	secure     bool
	sameSite   http.SameSite
	accessTTL  time.Duration
	refreshTTL time.Duration
	flowMaxAge time.Duration
	codec      *securecookie.SecureCookie
}

func newCookieJar(cfg *config.Config) *cookieJar {
	flowMaxAge := cfg.OAuth2.FlowCookieMaxAge

	codec := securecookie.New([]byte(cfg.Cookie.HashKey), nil)
	codec.MaxAge(int(flowMaxAge.Seconds()))

	return &cookieJar{
		path:       cfg.Cookie.Path,
		secure:     cfg.Cookie.Secure,
		sameSite:   parseSameSite(cfg.Cookie.SameSite),
		accessTTL:  cfg.Token.AccessTTL,
		refreshTTL: cfg.Token.RefreshTTL,
		flowMaxAge: flowMaxAge,
		codec:      codec,
	}
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// set writes a cookie; a negative maxAge deletes it.
func (j *cookieJar) set(c echo.Context, name, value string, maxAge int, sameSite http.SameSite) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     j.path,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: sameSite,
	})
}

// SetSession writes the locally issued token pair.
func (j *cookieJar) SetSession(c echo.Context, accessToken, refreshToken string) {
	j.set(c, CookieAccessToken, accessToken, seconds(j.accessTTL), j.sameSite)
	j.set(c, CookieRefreshToken, refreshToken, seconds(j.refreshTTL), j.sameSite)
}

// SetIDToken keeps the provider ID token for the logout hint.
func (j *cookieJar) SetIDToken(c echo.Context, idToken string) {
	j.set(c, CookieIDToken, idToken, seconds(j.refreshTTL), j.sameSite)
}

// SetFlow writes the signed state and code verifier of a pending federated login.
// Lax lets them ride along on the top-level redirect back from the provider.
func (j *cookieJar) SetFlow(c echo.Context, state, codeVerifier string) error {
	for _, cookie := range [][2]string{{CookieState, state}, {CookieCodeVerifier, codeVerifier}} {
		name, value := cookie[0], cookie[1]
		encoded, err := j.codec.Encode(name, value)
		if err != nil {
			return errors.Wrapf(err, "encode %s cookie", name)
		}
		j.set(c, name, encoded, seconds(j.flowMaxAge), http.SameSiteLaxMode)
	}

	return nil
}

// Flow reads the pending login values. A missing, tampered or expired cookie reads as empty.
func (j *cookieJar) Flow(c echo.Context) (state, codeVerifier string) {
	return j.decode(c, CookieState), j.decode(c, CookieCodeVerifier)
}

func (j *cookieJar) decode(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}

	var value string
	if err := j.codec.Decode(name, cookie.Value, &value); err != nil {
		return ""
	}

	return value
}

// Value returns a plain cookie value, or empty when absent.
func (j *cookieJar) Value(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// Clear expires the named cookies.
func (j *cookieJar) Clear(c echo.Context, names ...string) {
	for _, name := range names {
		sameSite := j.sameSite
		if name == CookieState || name == CookieCodeVerifier {
			sameSite = http.SameSiteLaxMode
		}
		j.set(c, name, "", -1, sameSite)
	}
}

func seconds(d time.Duration) int {
	return int(d / time.Second)
}
