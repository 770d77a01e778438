package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/barberpro/dashboard/config"
)

// shutdownWaitTimeout is the maximum time to wait for the server to drain.
const shutdownWaitTimeout = 15 * time.Second

// ServiceOrchestrationConfig contains configuration for service orchestration.
type ServiceOrchestrationConfig struct {
	Config      *config.AppConfig
	Services    ServiceContainer
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// RunServicesWithShutdown starts the HTTP server and blocks until a shutdown
// signal arrives or the server fails.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	if cfg == nil {
		return errors.New("service orchestration config is required")
	}
	if cfg.Config == nil {
		return errors.New("service orchestration config missing AppConfig")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	errCh := make(chan error, 1)
	server := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Logger:   logger,
		ErrCh:    errCh,
	})

	return waitForShutdown(shutdownConfig{
		quit:       quit,
		errCh:      errCh,
		httpServer: server,
		services:   cfg.Services,
		redis:      cfg.RedisClient,
		logger:     logger,
	})
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	quit       <-chan os.Signal
	errCh      <-chan error
	httpServer *http.Server
	services   ServiceContainer
	redis      redis.UniversalClient
	logger     *slog.Logger
}

// waitForShutdown waits for a shutdown signal or a server error.
func waitForShutdown(cfg shutdownConfig) error {
	select {
	case sig := <-cfg.quit:
		cfg.logger.Info("shutting down services...", "signal", sig.String())
		return gracefulStop(cfg)
	case err := <-cfg.errCh:
		cfg.logger.Error("service error", "error", err)
		if stopErr := gracefulStop(cfg); stopErr != nil {
			cfg.logger.Error("graceful stop failed", "error", stopErr)
		}
		return err
	}
}

// gracefulStop drains the server and then releases Redis and the metrics sink.
func gracefulStop(cfg shutdownConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownWaitTimeout)
	defer cancel()

	var errs []error
	if err := ShutdownHTTPServer(ShutdownConfig{
		Context: ctx,
		Server:  cfg.httpServer,
		Logger:  cfg.logger,
	}); err != nil {
		errs = append(errs, err)
	}

	if cfg.redis != nil {
		if err := cfg.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if err := cfg.services.Observability.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close metrics: %w", err))
	}
	return errors.Join(errs...)
}
