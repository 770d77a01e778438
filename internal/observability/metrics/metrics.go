// Package metrics emits the service's standardised metrics through a statsd.Sink.
package metrics

import (
	"strconv"
	"time"

	obserrors "github.com/barberpro/dashboard/internal/observability/errors"
	"github.com/barberpro/dashboard/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// GuardDecisionMetric describes one session guard decision.
type GuardDecisionMetric struct {
	Action  string
	Route   string
	Cleared bool
}

// EmitGuardDecision counts a session guard decision.
func EmitGuardDecision(sink statsd.Sink, in GuardDecisionMetric) {
	if sink == nil {
		return
	}
	route := in.Route
	if route == "" {
		route = "unclassified"
	}
	sink.Count("guard.decision", 1, map[string]string{
		"action":  in.Action,
		"route":   route,
		"cleared": strconv.FormatBool(in.Cleared),
	})
}

// BackendRequestMetric describes one call to the backend API.
type BackendRequestMetric struct {
	Endpoint string
	Duration time.Duration
	Err      error
}

// EmitBackendRequest counts and times a backend call.
func EmitBackendRequest(sink statsd.Sink, in BackendRequestMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"endpoint": in.Endpoint,
		"result":   ResultSuccess,
	}
	if in.Err != nil {
		tags["result"] = ResultError
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}

	sink.Count("backend.request", 1, tags)
	if in.Duration > 0 {
		sink.Timing("backend.duration", in.Duration, CloneTags(tags))
	}
}

// CloneTags creates a shallow copy of a tag map.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
