package httpx

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/barberpro/dashboard/internal/core"
	"github.com/barberpro/dashboard/internal/mocks"
	"github.com/barberpro/dashboard/internal/service"
)

const (
	cookieName = "@barber.token"
	goodToken  = "good-token"
)

var testCookies = CookieConfig{Name: cookieName, MaxAge: 30 * 24 * time.Hour}

// routerDeps exposes the backend port mocks behind a fully wired router.
type routerDeps struct {
	validator *mocks.MockCredentialValidator
	sessions  *mocks.MockSessionAPI
	haircuts  *mocks.MockHaircutAPI
	schedules *mocks.MockScheduleAPI
	profiles  *mocks.MockProfileAPI
	billing   *mocks.MockSubscriptionAPI
	cache     *mocks.MemoryCache
	handler   http.Handler
}

func newTestRouter(t *testing.T) *routerDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := &routerDeps{
		validator: mocks.NewMockCredentialValidator(ctrl),
		sessions:  mocks.NewMockSessionAPI(ctrl),
		haircuts:  mocks.NewMockHaircutAPI(ctrl),
		schedules: mocks.NewMockScheduleAPI(ctrl),
		profiles:  mocks.NewMockProfileAPI(ctrl),
		billing:   mocks.NewMockSubscriptionAPI(ctrl),
		cache:     mocks.NewMemoryCache(),
	}
	qc := core.NewQueryCache(core.QueryCacheOptions{Cache: d.cache, TTL: time.Minute})

	d.handler = NewRouter(RouterServices{
		Guard:     service.NewSessionGuard(service.SessionGuardOptions{Validator: d.validator}),
		Auth:      service.NewAuthService(service.AuthServiceOptions{Sessions: d.sessions}),
		Schedules: service.NewScheduleService(service.ScheduleServiceOptions{Schedules: d.schedules, Cache: qc}),
		Haircuts:  service.NewHaircutService(service.HaircutServiceOptions{Haircuts: d.haircuts, Cache: qc}),
		Profile: service.NewProfileService(service.ProfileServiceOptions{
			Sessions: d.sessions,
			Profiles: d.profiles,
		}),
		Subscriptions: service.NewSubscriptionService(service.SubscriptionServiceOptions{
			Sessions: d.sessions,
			Billing:  d.billing,
		}),
		Cache:   qc,
		Cookies: testCookies,
	})
	return d
}

// acceptToken makes the guard accept goodToken.
func (d *routerDeps) acceptToken() {
	d.validator.EXPECT().ValidateCredential(gomock.Any(), goodToken).Return(nil)
}

type testRequest struct {
	method string
	target string
	body   string
	cookie string
	ajax   bool
}

func serve(t *testing.T, h http.Handler, tr testRequest) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if tr.body != "" {
		body = strings.NewReader(tr.body)
	}
	req := httptest.NewRequest(tr.method, tr.target, body)
	if tr.body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if tr.cookie != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: tr.cookie})
	}
	if tr.ajax {
		req.Header.Set("Accept", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// sessionCookie returns the session cookie set on the response, if any.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, line := range rec.Header().Values("Set-Cookie") {
		if !strings.HasPrefix(line, cookieName+"=") {
			continue
		}
		// http.ParseSetCookie rejects the "@" in the session cookie name.
		c, err := http.ParseSetCookie(cookieNamePlaceholder + strings.TrimPrefix(line, cookieName))
		require.NoError(t, err)
		c.Name = cookieName
		return c
	}
	return nil
}

func requirePurged(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	c := sessionCookie(t, rec)
	require.NotNil(t, c, "expected the session cookie to be purged")
	require.Empty(t, c.Value)
	require.Less(t, c.MaxAge, 0)
	require.Equal(t, "/", c.Path)
}
