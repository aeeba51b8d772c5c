package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieJar_FlowRoundTrip(t *testing.T) {
	jar := newCookieJar(newTestConfig())
	e := newTestEcho()

	rec := httptest.NewRecorder()
	require.NoError(t, jar.SetFlow(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), "state-1", "verifier-1"))

	set := responseCookies(rec)
	require.Contains(t, set, CookieState)
	require.Contains(t, set, CookieCodeVerifier)
	assert.NotEqual(t, "state-1", set[CookieState].Value)
	assert.True(t, set[CookieState].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, set[CookieState].SameSite)
	assert.Equal(t, int((10 * time.Minute).Seconds()), set[CookieState].MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/federated/callback", nil)
	req.AddCookie(set[CookieState])
	req.AddCookie(set[CookieCodeVerifier])

	state, verifier := jar.Flow(e.NewContext(req, httptest.NewRecorder()))
	assert.Equal(t, "state-1", state)
	assert.Equal(t, "verifier-1", verifier)
}

func TestCookieJar_FlowRejectsTamperedValues(t *testing.T) {
	jar := newCookieJar(newTestConfig())
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/federated/callback", nil)
	req.AddCookie(&http.Cookie{Name: CookieState, Value: "attacker-chosen"})

	state, verifier := jar.Flow(e.NewContext(req, httptest.NewRecorder()))
	assert.Empty(t, state)
	assert.Empty(t, verifier)

	other := newTestConfig()
	other.Cookie.HashKey = "a_different_hash_key_for_signing"
	rec := httptest.NewRecorder()
	require.NoError(t, newCookieJar(other).SetFlow(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), "state-1", "verifier-1"))

	req = httptest.NewRequest(http.MethodGet, "/federated/callback", nil)
	req.AddCookie(responseCookies(rec)[CookieState])
	state, _ = jar.Flow(e.NewContext(req, httptest.NewRecorder()))
	assert.Empty(t, state)
}

func TestCookieJar_SessionAndClear(t *testing.T) {
	cfg := newTestConfig()
	cfg.Cookie.Secure = true
	cfg.Cookie.SameSite = "strict"
	jar := newCookieJar(cfg)
	e := newTestEcho()

	rec := httptest.NewRecorder()
	jar.SetSession(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), "access", "refresh")

	set := responseCookies(rec)
	assert.Equal(t, "access", set[CookieAccessToken].Value)
	assert.Equal(t, int(cfg.Token.AccessTTL.Seconds()), set[CookieAccessToken].MaxAge)
	assert.Equal(t, "refresh", set[CookieRefreshToken].Value)
	assert.Equal(t, int(cfg.Token.RefreshTTL.Seconds()), set[CookieRefreshToken].MaxAge)
	assert.True(t, set[CookieAccessToken].Secure)
	assert.Equal(t, http.SameSiteStrictMode, set[CookieAccessToken].SameSite)
	assert.Equal(t, "/", set[CookieAccessToken].Path)

	rec = httptest.NewRecorder()
	jar.Clear(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), sessionCookies...)

	cleared := responseCookies(rec)
	for _, name := range sessionCookies {
		require.Contains(t, cleared, name)
		assert.Empty(t, cleared[name].Value)
		assert.Negative(t, cleared[name].MaxAge)
	}
}
