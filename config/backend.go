package config

import (
	"strings"
	"time"
)

const (
	defaultBackendURL      = "http://localhost:3333"
	defaultBackendTimeout  = 10 * time.Second
	defaultValidateTimeout = 3 * time.Second

	// DefaultPlanStatusExpr covers both response shapes the backend uses for the
	// subscription (`subscriptions` on /me and /haircut/check, `subscription` on /session).
	DefaultPlanStatusExpr = "subscriptions.status || subscription.status"
)

// BackendConfig contains configuration for the external barbershop backend API.
type BackendConfig struct {
	// URL is the base URL of the backend API.
	URL string `env:"URL" envDefault:"http://localhost:3333"`

	// Timeout bounds every backend call made on behalf of a dashboard handler.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// ValidateTimeout bounds the credential validation call made by the session guard.
	// Expiry is treated as an invalid credential.
	ValidateTimeout time.Duration `env:"VALIDATE_TIMEOUT" envDefault:"3s"`

	// PlanStatusExpr is a JMESPath expression extracting the subscription status
	// from user and plan-check payloads.
	PlanStatusExpr string `env:"PLAN_STATUS_EXPR" envDefault:"subscriptions.status || subscription.status"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	b.URL = strings.TrimRight(strings.TrimSpace(b.URL), "/")
	if b.URL == "" {
		b.URL = defaultBackendURL
	}
	if b.Timeout <= 0 {
		b.Timeout = defaultBackendTimeout
	}
	if b.ValidateTimeout <= 0 {
		b.ValidateTimeout = defaultValidateTimeout
	}
	if b.ValidateTimeout > b.Timeout {
		b.ValidateTimeout = b.Timeout
	}
	if strings.TrimSpace(b.PlanStatusExpr) == "" {
		b.PlanStatusExpr = DefaultPlanStatusExpr
	}
}
