package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/barberpro/dashboard/internal/domain/guard"
	apperrors "github.com/barberpro/dashboard/internal/errors"
	"github.com/barberpro/dashboard/internal/mocks"
	"github.com/barberpro/dashboard/internal/observability/statsd"
)

func newTestGuard(t *testing.T, timeout time.Duration) (*SessionGuard, *mocks.MockCredentialValidator, *statsd.Recorder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	validator := mocks.NewMockCredentialValidator(ctrl)
	rec := &statsd.Recorder{}
	g := NewSessionGuard(SessionGuardOptions{
		Validator: validator,
		Timeout:   timeout,
		Telemetry: Telemetry{Metrics: rec},
	})
	return g, validator, rec
}

func TestSessionGuard_ProtectedWithoutCredential(t *testing.T) {
	g, _, rec := newTestGuard(t, time.Second)

	d := g.Evaluate(context.Background(), "/dashboard/haircuts", "")

	assert.Equal(t, guard.Decision{Action: guard.Redirect, Location: "/auth"}, d)
	counts := rec.Counts("guard.decision")
	require.Len(t, counts, 1)
	assert.Equal(t, map[string]string{
		"action":  "redirect",
		"route":   "/dashboard/haircuts",
		"cleared": "false",
	}, counts[0].Tags)
}

func TestSessionGuard_AuthPageWithRejectedCredential(t *testing.T) {
	g, validator, _ := newTestGuard(t, time.Second)
	validator.EXPECT().
		ValidateCredential(gomock.Any(), "expired-token").
		Return(apperrors.FromStatus(401, "token expired"))

	d := g.Evaluate(context.Background(), "/auth", "expired-token")

	assert.Equal(t, guard.Decision{Action: guard.Allow, ClearCredential: true}, d)
}

func TestSessionGuard_AuthPageWithValidCredential(t *testing.T) {
	g, validator, _ := newTestGuard(t, time.Second)
	validator.EXPECT().ValidateCredential(gomock.Any(), "good-token").Return(nil)

	d := g.Evaluate(context.Background(), "/auth", "good-token")

	assert.Equal(t, guard.Decision{Action: guard.Redirect, Location: "/dashboard"}, d)
}

func TestSessionGuard_ProtectedWithValidCredential(t *testing.T) {
	g, validator, _ := newTestGuard(t, time.Second)
	validator.EXPECT().ValidateCredential(gomock.Any(), "good-token").Return(nil)

	d := g.Evaluate(context.Background(), "/dashboard", "good-token")

	assert.Equal(t, guard.Decision{Action: guard.Allow}, d)
}

func TestSessionGuard_ProtectedWithRejectedCredential(t *testing.T) {
	g, validator, rec := newTestGuard(t, time.Second)
	validator.EXPECT().
		ValidateCredential(gomock.Any(), "stale").
		Return(apperrors.FromStatus(500, ""))

	d := g.Evaluate(context.Background(), "/dashboard/haircuts/abc", "stale")

	assert.Equal(t, guard.Decision{Action: guard.Redirect, Location: "/auth", ClearCredential: true}, d)
	assert.Equal(t, "/dashboard/haircuts/{id}", rec.Counts("guard.decision")[0].Tags["route"])
	assert.Equal(t, "true", rec.Counts("guard.decision")[0].Tags["cleared"])
}

func TestSessionGuard_UnclassifiedNeverValidates(t *testing.T) {
	g, _, _ := newTestGuard(t, time.Second)

	for _, cred := range []string{"", "anything"} {
		d := g.Evaluate(context.Background(), "/reports", cred)
		assert.Equal(t, guard.Decision{Action: guard.Allow}, d)

		d = g.Evaluate(context.Background(), "/dashboard/settings", cred)
		assert.Equal(t, guard.Decision{Action: guard.Allow}, d)
	}
}

func TestSessionGuard_TimeoutIsInvalid(t *testing.T) {
	g, validator, _ := newTestGuard(t, 20*time.Millisecond)
	validator.EXPECT().
		ValidateCredential(gomock.Any(), "slow").
		DoAndReturn(func(ctx context.Context, _ string) error {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok, "validation must carry a deadline")
			assert.WithinDuration(t, time.Now().Add(20*time.Millisecond), deadline, 20*time.Millisecond)
			<-ctx.Done()
			return ctx.Err()
		})

	start := time.Now()
	d := g.Evaluate(context.Background(), "/dashboard", "slow")

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, guard.Decision{Action: guard.Redirect, Location: "/auth", ClearCredential: true}, d)
}

func TestSessionGuard_CanceledRequestIsInvalid(t *testing.T) {
	g, validator, _ := newTestGuard(t, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	validator.EXPECT().
		ValidateCredential(gomock.Any(), "tok").
		DoAndReturn(func(ctx context.Context, _ string) error {
			cancel()
			<-ctx.Done()
			return ctx.Err()
		})

	d := g.Evaluate(ctx, "/auth", "tok")

	assert.Equal(t, guard.Decision{Action: guard.Allow, ClearCredential: true}, d)
}

func TestSessionGuard_IsIdempotent(t *testing.T) {
	g, validator, _ := newTestGuard(t, time.Second)
	validator.EXPECT().ValidateCredential(gomock.Any(), "good-token").Return(nil).Times(2)

	first := g.Evaluate(context.Background(), "/dashboard/profile", "good-token")
	second := g.Evaluate(context.Background(), "/dashboard/profile", "good-token")

	assert.Equal(t, first, second)
}

func TestNewSessionGuard_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := NewSessionGuard(SessionGuardOptions{Validator: mocks.NewMockCredentialValidator(ctrl)})
	assert.Equal(t, DefaultValidateTimeout, g.timeout)

	assert.Panics(t, func() { NewSessionGuard(SessionGuardOptions{}) })
}
