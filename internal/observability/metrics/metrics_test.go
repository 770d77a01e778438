package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/barberpro/dashboard/internal/errors"
	"github.com/barberpro/dashboard/internal/observability/statsd"
)

func TestEmitGuardDecision(t *testing.T) {
	rec := &statsd.Recorder{}

	EmitGuardDecision(rec, GuardDecisionMetric{Action: "redirect", Route: "/dashboard", Cleared: true})
	EmitGuardDecision(rec, GuardDecisionMetric{Action: "allow"})

	got := rec.Counts("guard.decision")
	require.Len(t, got, 2)
	assert.Equal(t, map[string]string{"action": "redirect", "route": "/dashboard", "cleared": "true"}, got[0].Tags)
	assert.Equal(t, "unclassified", got[1].Tags["route"])
	assert.Equal(t, "false", got[1].Tags["cleared"])
}

func TestEmitBackendRequest(t *testing.T) {
	rec := &statsd.Recorder{}

	EmitBackendRequest(rec, BackendRequestMetric{Endpoint: "me", Duration: 20 * time.Millisecond})
	EmitBackendRequest(rec, BackendRequestMetric{Endpoint: "me", Err: apperrors.Unauthorized("expired")})

	counts := rec.Counts("backend.request")
	require.Len(t, counts, 2)
	assert.Equal(t, ResultSuccess, counts[0].Tags["result"])
	assert.NotContains(t, counts[0].Tags, "error_class")
	assert.Equal(t, ResultError, counts[1].Tags["result"])
	assert.Equal(t, "unauthorized", counts[1].Tags["error_class"])

	timings := rec.Timings("backend.duration")
	require.Len(t, timings, 1, "zero durations are not timed")
	assert.Equal(t, 20*time.Millisecond, timings[0].Duration)
}

func TestEmitNilSink(t *testing.T) {
	EmitGuardDecision(nil, GuardDecisionMetric{Action: "allow"})
	EmitBackendRequest(nil, BackendRequestMetric{Endpoint: "me"})
}
