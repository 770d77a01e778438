package config

import (
	"reflect"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":3000" {
		t.Fatalf("HTTP.Addr = %q, want :3000", cfg.HTTP.Addr)
	}
	if cfg.Session.CookieName != "@barber.token" {
		t.Fatalf("Session.CookieName = %q, want @barber.token", cfg.Session.CookieName)
	}
	if cfg.Session.MaxAge != 30*24*time.Hour {
		t.Fatalf("Session.MaxAge = %v, want 720h", cfg.Session.MaxAge)
	}
	if cfg.Backend.ValidateTimeout != 3*time.Second {
		t.Fatalf("Backend.ValidateTimeout = %v, want 3s", cfg.Backend.ValidateTimeout)
	}
	if cfg.Backend.PlanStatusExpr != DefaultPlanStatusExpr {
		t.Fatalf("Backend.PlanStatusExpr = %q", cfg.Backend.PlanStatusExpr)
	}
	if cfg.IsCacheEnabled() {
		t.Fatal("cache must be disabled by default")
	}
}

func TestAppConfig_ParseBackendEnv(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://api.barber.example.com/ ")
	t.Setenv("BACKEND_TIMEOUT", "4s")
	t.Setenv("BACKEND_VALIDATE_TIMEOUT", "9s")
	t.Setenv("BACKEND_PLAN_STATUS_EXPR", "subscription.status")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	expected := BackendConfig{
		URL:             "https://api.barber.example.com",
		Timeout:         4 * time.Second,
		ValidateTimeout: 4 * time.Second, // clamped to Timeout
		PlanStatusExpr:  "subscription.status",
	}

	if !reflect.DeepEqual(cfg.Backend, expected) {
		t.Fatalf("unexpected backend configuration:\nexpected: %#v\ngot:      %#v", expected, cfg.Backend)
	}
}

func TestBackendConfig_Sanitize(t *testing.T) {
	cfg := BackendConfig{URL: "  ", Timeout: -1, ValidateTimeout: 0, PlanStatusExpr: " "}
	cfg.Sanitize()

	if cfg.URL != defaultBackendURL {
		t.Fatalf("URL = %q, want %q", cfg.URL, defaultBackendURL)
	}
	if cfg.Timeout != defaultBackendTimeout {
		t.Fatalf("Timeout = %v, want %v", cfg.Timeout, defaultBackendTimeout)
	}
	if cfg.ValidateTimeout != defaultValidateTimeout {
		t.Fatalf("ValidateTimeout = %v, want %v", cfg.ValidateTimeout, defaultValidateTimeout)
	}
	if cfg.PlanStatusExpr != DefaultPlanStatusExpr {
		t.Fatalf("PlanStatusExpr = %q", cfg.PlanStatusExpr)
	}
}

func TestHTTPConfig_SanitizeCookieDomain(t *testing.T) {
	tests := map[string]string{
		"":                    "",
		"localhost":           "localhost",
		".Barber.Example.com": "barber.example.com",
		"com":                 "",
		"co.uk":               "",
		"app.example.co.uk":   "app.example.co.uk",
	}

	for input, want := range tests {
		cfg := HTTPConfig{Addr: ":8080", CookieDomain: input}
		cfg.Sanitize()
		if cfg.CookieDomain != want {
			t.Fatalf("sanitize cookie domain %q = %q, want %q", input, cfg.CookieDomain, want)
		}
	}
}

func TestSessionConfig_Sanitize(t *testing.T) {
	cfg := SessionConfig{CookieName: " ", MaxAge: 0}
	cfg.Sanitize()

	if cfg.CookieName != DefaultSessionCookieName {
		t.Fatalf("CookieName = %q, want %q", cfg.CookieName, DefaultSessionCookieName)
	}
	if cfg.MaxAge != defaultSessionMaxAge {
		t.Fatalf("MaxAge = %v, want %v", cfg.MaxAge, defaultSessionMaxAge)
	}
}

func TestAppConfig_IsCacheEnabled(t *testing.T) {
	cfg := AppConfig{
		Redis: RedisConfig{URI: "localhost:6379"},
		Cache: CacheConfig{Enabled: true},
	}
	if !cfg.IsCacheEnabled() {
		t.Fatal("expected cache to be enabled")
	}

	cfg.Redis.URI = " "
	if cfg.IsCacheEnabled() {
		t.Fatal("cache without a redis URI must be disabled")
	}
}

func TestObservabilityMetricsConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityMetricsConfig{Enabled: true, StatsdAddress: "  ", Prefix: ""}
	cfg.Sanitize()

	if cfg.IsEnabled() {
		t.Fatal("metrics without an address must be disabled")
	}
	if cfg.Prefix != defaultObservabilityName {
		t.Fatalf("Prefix = %q, want %q", cfg.Prefix, defaultObservabilityName)
	}
}

func TestAppConfig_DetectDevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	cfg.Sanitize()

	if !cfg.IsDev {
		t.Fatal("expected NODE_ENV=development to enable dev mode")
	}
}
