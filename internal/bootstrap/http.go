package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/barberpro/dashboard/config"
	httpx "github.com/barberpro/dashboard/internal/http"
)

const (
	defaultHTTPAddr     = ":3000"
	httpShutdownTimeout = 10 * time.Second
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
	// ErrCh receives the listener error if the server stops unexpectedly.
	ErrCh chan<- error
}

// StartHTTPServer builds the router and starts serving in the background.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) *http.Server {
	if cfg == nil {
		return nil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	handler := buildHTTPHandler(logger, routerServices(appCfg, cfg.Services, logger))
	return startServer(logger, handler, appCfg.HTTP.Addr, cfg.ErrCh)
}

func routerServices(cfg *config.AppConfig, svc ServiceContainer, logger *slog.Logger) httpx.RouterServices {
	services := httpx.RouterServices{
		Guard:         svc.Guard,
		Auth:          svc.Auth,
		Schedules:     svc.Schedules,
		Haircuts:      svc.Haircuts,
		Profile:       svc.Profile,
		Subscriptions: svc.Subscriptions,
		Cookies:       httpx.NewCookieConfig(cfg),
		Logger:        logger,
	}
	if svc.Cache != nil {
		services.Cache = svc.Cache
	}
	return services
}

// buildHTTPHandler applies the outer middleware. Order: Recover -> Logging -> SessionGuard -> Router.
func buildHTTPHandler(logger *slog.Logger, services httpx.RouterServices) http.Handler {
	h := httpx.NewRouter(services)
	h = httpx.Logging(logger)(h)
	h = httpx.Recover(logger)(h)
	return h
}

func startServer(logger *slog.Logger, handler http.Handler, addr string, errCh chan<- error) *http.Server {
	if addr == "" {
		addr = defaultHTTPAddr
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		err := server.ListenAndServe()
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return
		}
		logger.Error("HTTP server failed", "error", err)
		if errCh == nil {
			return
		}
		select {
		case errCh <- fmt.Errorf("http server: %w", err):
		default:
			logger.Warn("dropping HTTP server error", "error", err)
		}
	}()

	return server
}

// ShutdownConfig contains dependencies for HTTP server shutdown.
type ShutdownConfig struct {
	Context context.Context
	Server  *http.Server
	Logger  *slog.Logger
}

// ShutdownHTTPServer stops accepting connections and drains in-flight requests.
func ShutdownHTTPServer(cfg ShutdownConfig) error {
	if cfg.Server == nil {
		return nil
	}
	parent := cfg.Context
	if parent == nil {
		parent = context.Background()
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(parent, httpShutdownTimeout)
	defer cancel()

	if err := cfg.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("HTTP server stopped")
	}
	return nil
}
