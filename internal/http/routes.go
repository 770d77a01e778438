package httpx

import (
	"log/slog"
	"net/http"

	"github.com/barberpro/dashboard/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Guard         *service.SessionGuard
	Auth          *service.AuthService
	Schedules     *service.ScheduleService
	Haircuts      *service.HaircutService
	Profile       *service.ProfileService
	Subscriptions *service.SubscriptionService
	// Optional: reported by /healthz when enabled.
	Cache   HealthChecker
	Cookies CookieConfig
	Logger  *slog.Logger // Logger for request failures (optional)
}

// NewRouter creates the HTTP router with the session guard in front of it.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()
	base := handlerBase{Cookies: services.Cookies, Logger: services.Logger}

	registerAuthRoutes(mux, &AuthHandlers{handlerBase: base, Svc: services.Auth})
	registerScheduleRoutes(mux, &ScheduleHandlers{
		handlerBase: base,
		Schedules:   services.Schedules,
		Haircuts:    services.Haircuts,
	})
	registerHaircutRoutes(mux, &HaircutHandlers{handlerBase: base, Svc: services.Haircuts})
	registerProfileRoutes(mux, &ProfileHandlers{
		handlerBase:   base,
		Profile:       services.Profile,
		Subscriptions: services.Subscriptions,
	})

	health := &HealthHandlers{Cache: services.Cache}
	mux.Handle("GET /healthz", http.HandlerFunc(health.Health))
	mux.Handle("HEAD /healthz", http.HandlerFunc(health.Health))

	return SessionGuard(services.Guard, services.Cookies)(mux)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth", h.Page)
	mux.HandleFunc("POST /auth/session", h.SignIn)
	mux.HandleFunc("POST /auth/users", h.SignUp)
	mux.HandleFunc("POST /auth/signout", h.SignOut)
}

func registerScheduleRoutes(mux *http.ServeMux, h *ScheduleHandlers) {
	mux.HandleFunc("GET /dashboard", h.List)
	mux.HandleFunc("DELETE /dashboard", h.Finish)
	mux.HandleFunc("GET /dashboard/new-schedule", h.NewForm)
	mux.HandleFunc("POST /dashboard/new-schedule", h.Create)
}

func registerHaircutRoutes(mux *http.ServeMux, h *HaircutHandlers) {
	mux.HandleFunc("GET /dashboard/haircuts", h.List)
	mux.HandleFunc("GET /dashboard/haircuts/new", h.NewForm)
	mux.HandleFunc("POST /dashboard/haircuts/new", h.Create)
	mux.HandleFunc("GET /dashboard/haircuts/{id}", h.Detail)
	mux.HandleFunc("PUT /dashboard/haircuts/{id}", h.Update)
}

func registerProfileRoutes(mux *http.ServeMux, h *ProfileHandlers) {
	mux.HandleFunc("GET /dashboard/profile", h.Get)
	mux.HandleFunc("PUT /dashboard/profile", h.Update)
	mux.HandleFunc("GET /dashboard/profile/change-plan", h.Get)
	mux.HandleFunc("POST /dashboard/profile/change-plan", h.ChangePlan)
}
