package config

import (
	"strings"
	"time"
)

const (
	// DefaultSessionCookieName is the cookie key the credential has always been stored under.
	DefaultSessionCookieName = "@barber.token"
	defaultSessionMaxAge     = 30 * 24 * time.Hour
)

// SessionConfig controls the session credential cookie.
type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"@barber.token"`
	MaxAge     time.Duration `env:"SESSION_MAX_AGE"     envDefault:"720h"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	s.CookieName = strings.TrimSpace(s.CookieName)
	if s.CookieName == "" {
		s.CookieName = DefaultSessionCookieName
	}
	if s.MaxAge <= 0 {
		s.MaxAge = defaultSessionMaxAge
	}
}
