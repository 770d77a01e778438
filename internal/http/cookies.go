package httpx

import (
	"net/http"
	"strings"
	"time"

	"github.com/barberpro/dashboard/config"
)

// CookieConfig describes the session credential cookie.
type CookieConfig struct {
	Name   string
	Domain string
	// Secure forces the Secure attribute; it is also set for TLS or forwarded-https requests.
	Secure bool
	MaxAge time.Duration
}

// NewCookieConfig builds the cookie settings from the application configuration.
func NewCookieConfig(cfg *config.AppConfig) CookieConfig {
	return CookieConfig{
		Name:   cfg.Session.CookieName,
		Domain: cfg.HTTP.CookieDomain,
		Secure: cfg.HTTP.CookieSecure,
		MaxAge: cfg.Session.MaxAge,
	}
}

func (c CookieConfig) name() string {
	if c.Name == "" {
		return config.DefaultSessionCookieName
	}
	return c.Name
}

// Read returns the credential carried by r, or "" when there is none.
// An empty cookie value counts as no credential.
func (c CookieConfig) Read(r *http.Request) string {
	name := c.name()
	if cookie, err := r.Cookie(name); err == nil {
		return cookie.Value
	}
	// net/http skips names outside the RFC 6265 token set, such as the
	// default "@barber.token", so those are matched by hand.
	for _, line := range r.Header.Values("Cookie") {
		for part := range strings.SplitSeq(line, ";") {
			k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
			if !ok || k != name {
				continue
			}
			if len(v) > 1 && v[0] == '"' && v[len(v)-1] == '"' {
				v = v[1 : len(v)-1]
			}
			return v
		}
	}
	return ""
}

// Set stores credential in the session cookie.
func (c CookieConfig) Set(w http.ResponseWriter, r *http.Request, credential string) {
	setCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    credential,
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   c.secure(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(c.MaxAge.Seconds()),
	})
}

// Purge deletes the session cookie. It mirrors the attributes used by Set so
// browsers match and drop the stored cookie.
func (c CookieConfig) Purge(w http.ResponseWriter, r *http.Request) {
	setCookie(w, &http.Cookie{
		Name:     c.name(),
		Value:    "",
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   c.secure(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// cookieNamePlaceholder stands in for names http.Cookie refuses to serialize.
const cookieNamePlaceholder = "x"

// setCookie writes cookie like http.SetCookie, but keeps names net/http
// considers invalid, which browsers accept.
func setCookie(w http.ResponseWriter, cookie *http.Cookie) {
	if line := cookie.String(); line != "" {
		w.Header().Add("Set-Cookie", line)
		return
	}
	named := *cookie
	named.Name = cookieNamePlaceholder
	line := named.String()
	if line == "" || strings.ContainsAny(cookie.Name, "=;, \t\r\n") {
		return
	}
	w.Header().Add("Set-Cookie", cookie.Name+strings.TrimPrefix(line, cookieNamePlaceholder))
}

func (c CookieConfig) secure(r *http.Request) bool {
	return c.Secure || r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// isAJAX reports whether the client asked for a JSON answer instead of a navigation.
func isAJAX(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest")
}
