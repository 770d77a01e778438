package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberpro/dashboard/config"
)

func TestNewCookieConfig(t *testing.T) {
	cfg := &config.AppConfig{
		HTTP:    config.HTTPConfig{CookieDomain: "barber.example.com", CookieSecure: true},
		Session: config.SessionConfig{CookieName: "@barber.token", MaxAge: time.Hour},
	}

	assert.Equal(t, CookieConfig{
		Name:   "@barber.token",
		Domain: "barber.example.com",
		Secure: true,
		MaxAge: time.Hour,
	}, NewCookieConfig(cfg))
}

func TestCookieConfig_SetAndPurge(t *testing.T) {
	c := CookieConfig{Name: cookieName, Domain: "barber.example.com", MaxAge: time.Hour}
	req := httptest.NewRequest(http.MethodPost, "/auth/session", nil)

	rec := httptest.NewRecorder()
	c.Set(rec, req, "jwt")
	set := sessionCookie(t, rec)
	require.NotNil(t, set)
	assert.Equal(t, "jwt", set.Value)
	assert.Equal(t, 3600, set.MaxAge)
	assert.Equal(t, "barber.example.com", set.Domain)
	assert.False(t, set.Secure)

	rec = httptest.NewRecorder()
	c.Purge(rec, req)
	requirePurged(t, rec)
	assert.Equal(t, "barber.example.com", sessionCookie(t, rec).Domain)
}

func TestCookieConfig_Secure(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/auth/session", nil)
	req.Header.Set("X-Forwarded-Proto", "https")

	rec := httptest.NewRecorder()
	CookieConfig{Name: cookieName}.Set(rec, req, "jwt")
	assert.True(t, sessionCookie(t, rec).Secure)

	rec = httptest.NewRecorder()
	CookieConfig{Name: cookieName, Secure: true}.Set(rec, httptest.NewRequest(http.MethodPost, "/", nil), "jwt")
	assert.True(t, sessionCookie(t, rec).Secure)
}

func TestCookieConfig_Read(t *testing.T) {
	c := CookieConfig{}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	assert.Empty(t, c.Read(req))

	req.AddCookie(&http.Cookie{Name: "other", Value: "x"})
	assert.Empty(t, c.Read(req))

	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: config.DefaultSessionCookieName, Value: "tok"})
	assert.Equal(t, "tok", c.Read(req), "an unnamed config falls back to the default cookie")
}

func TestCookieConfig_NonTokenName(t *testing.T) {
	c := CookieConfig{Name: "@barber.token", MaxAge: time.Hour}

	rec := httptest.NewRecorder()
	c.Set(rec, httptest.NewRequest(http.MethodPost, "/auth/session", nil), "jwt")
	line := rec.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(line, "@barber.token=jwt; "), line)
	assert.Contains(t, line, "HttpOnly")

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Cookie", `theme=dark; @barber.token="jwt"`)
	assert.Equal(t, "jwt", c.Read(req))

	rec = httptest.NewRecorder()
	CookieConfig{Name: "bad name"}.Set(rec, req, "jwt")
	assert.Empty(t, rec.Header().Values("Set-Cookie"))
}
