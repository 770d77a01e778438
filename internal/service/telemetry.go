// Package service orchestrates the dashboard use cases on top of the backend ports.
package service

import (
	"log/slog"

	"github.com/barberpro/dashboard/internal/observability/statsd"
)

// Telemetry groups the optional logging and metrics dependencies of a service.
type Telemetry struct {
	Logger  *slog.Logger
	Metrics statsd.Sink
}

func (t Telemetry) logger(component string) *slog.Logger {
	l := t.Logger
	if l == nil {
		l = slog.Default()
	}
	return l.With("component", component)
}
