package httpx

import (
	"context"
	"io"
	"net/http"
	"time"
)

const (
	healthResponse = `{"status":"ok"}`

	healthCheckTimeout = 2 * time.Second
)

// HealthChecker reports the health of an optional dependency.
type HealthChecker interface {
	Enabled() bool
	Health(ctx context.Context) error
}

// HealthHandlers serves readiness/liveness checks.
type HealthHandlers struct {
	// Cache is optional; when enabled its health is part of the answer.
	Cache HealthChecker
}

type healthBody struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}

// Health returns 200 when the service and its enabled dependencies are up, 503 otherwise.
func (h *HealthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.Cache == nil || !h.Cache.Enabled() {
		writeHealth(w, r, http.StatusOK, healthResponse)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	code, body := http.StatusOK, healthBody{Status: "ok", Cache: "ok"}
	if err := h.Cache.Health(ctx); err != nil {
		code, body = http.StatusServiceUnavailable, healthBody{Status: "degraded", Cache: "down"}
	}
	if r.Method == http.MethodHead {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		return
	}
	WriteJSON(w, code, body)
}

func writeHealth(w http.ResponseWriter, r *http.Request, code int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, body); err != nil {
		// Nothing more to do if the client connection is gone.
		return
	}
}
