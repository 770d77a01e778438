package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/barberpro/dashboard/internal/domain/guard"
	"github.com/barberpro/dashboard/internal/domain/route"
	"github.com/barberpro/dashboard/internal/observability/metrics"
	"github.com/barberpro/dashboard/internal/observability/statsd"
	"github.com/barberpro/dashboard/internal/ports"
)

// DefaultValidateTimeout bounds a credential validation when no timeout is configured.
const DefaultValidateTimeout = 3 * time.Second

// SessionGuardOptions groups dependencies for SessionGuard.
type SessionGuardOptions struct {
	Validator ports.CredentialValidator // Required
	Timeout   time.Duration
	Telemetry Telemetry
}

// SessionGuard decides, per request, whether navigation proceeds, is redirected,
// and whether the session credential must be purged. It keeps no state between
// requests: every credential on a guarded page is revalidated against the backend.
type SessionGuard struct {
	validator ports.CredentialValidator
	timeout   time.Duration
	logger    *slog.Logger
	metrics   statsd.Sink
}

// NewSessionGuard constructs a new SessionGuard.
func NewSessionGuard(opts SessionGuardOptions) *SessionGuard {
	if opts.Validator == nil {
		panic("CredentialValidator is required")
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultValidateTimeout
	}
	return &SessionGuard{
		validator: opts.Validator,
		timeout:   timeout,
		logger:    opts.Telemetry.logger("session_guard"),
		metrics:   opts.Telemetry.Metrics,
	}
}

// Evaluate returns the decision for a request to path carrying credential.
// An empty credential means none was presented. Evaluate never fails: any
// validation problem is folded into an invalid credential.
func (g *SessionGuard) Evaluate(ctx context.Context, path, credential string) guard.Decision {
	class := route.Classify(path)
	cred := guard.Credential{Present: credential != ""}
	if guard.NeedsValidation(class, cred.Present) {
		cred.Valid = g.validate(ctx, credential)
	}

	decision := guard.Decide(class, cred)

	pattern := route.Pattern(path)
	metrics.EmitGuardDecision(g.metrics, metrics.GuardDecisionMetric{
		Action:  string(decision.Action),
		Route:   pattern,
		Cleared: decision.ClearCredential,
	})
	g.logger.DebugContext(ctx, "session guard decision",
		"path", path,
		"route", pattern,
		"class", string(class),
		"credential", cred.Present,
		"action", string(decision.Action),
		"location", decision.Location,
		"cleared", decision.ClearCredential,
	)
	return decision
}

// validate asks the backend about credential, bounded by the guard timeout and by ctx.
func (g *SessionGuard) validate(ctx context.Context, credential string) bool {
	vctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.validator.ValidateCredential(vctx, credential); err != nil {
		g.logger.WarnContext(ctx, "session credential rejected",
			"error", err,
			"error_class", classify(err),
		)
		return false
	}
	return true
}
