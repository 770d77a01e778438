package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/barberpro/dashboard/config"
	"github.com/barberpro/dashboard/internal/adapters/backend"
	redisadapter "github.com/barberpro/dashboard/internal/adapters/redis"
	"github.com/barberpro/dashboard/internal/core"
	"github.com/barberpro/dashboard/internal/observability/statsd"
	"github.com/barberpro/dashboard/internal/ports"
	"github.com/barberpro/dashboard/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Guard         *service.SessionGuard
	Auth          *service.AuthService
	Schedules     *service.ScheduleService
	Haircuts      *service.HaircutService
	Profile       *service.ProfileService
	Subscriptions *service.SubscriptionService
	// Cache is nil when the query cache is disabled.
	Cache         *core.QueryCache
	Observability ObservabilityContainer
}

// ObservabilityContainer groups shared observability dependencies.
type ObservabilityContainer struct {
	MetricsSink   *statsd.Client
	MetricsConfig config.ObservabilityMetricsConfig
}

// Close releases the metrics connection.
func (o ObservabilityContainer) Close() error {
	if o.MetricsSink == nil {
		return nil
	}
	return o.MetricsSink.Close()
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config *config.AppConfig
	// RedisClient backs the query cache; nil disables it.
	RedisClient redis.UniversalClient
	// Backend overrides the HTTP backend client. Tests inject fakes here.
	Backend ports.BackendAPI
	Logger  *slog.Logger
}

// buildObservability configures the metrics sink. A sink that cannot be dialled
// is logged and left out rather than failing startup.
func buildObservability(logger *slog.Logger, cfg config.ObservabilityConfig) ObservabilityContainer {
	out := ObservabilityContainer{MetricsConfig: cfg.Metrics}
	if !cfg.Metrics.IsEnabled() {
		return out
	}

	client, err := statsd.NewClient(statsd.Config{
		Enabled: true,
		Address: cfg.Metrics.StatsdAddress,
		Prefix:  cfg.Metrics.Prefix,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to initialise statsd client", "error", err)
		return out
	}
	out.MetricsSink = client
	return out
}

// metricsSink avoids handing a typed nil *statsd.Client to services as a Sink.
//
//nolint:ireturn // services depend on the Sink port.
func (o ObservabilityContainer) metricsSink() statsd.Sink {
	if o.MetricsSink == nil {
		return nil
	}
	return o.MetricsSink
}

//nolint:ireturn // the adapter is consumed through its port.
func buildBackend(cfg *config.AppConfig, metrics statsd.Sink, logger *slog.Logger) (ports.BackendAPI, error) {
	client, err := backend.New(backend.Options{
		BaseURL:        cfg.Backend.URL,
		Timeout:        cfg.Backend.Timeout,
		PlanStatusExpr: cfg.Backend.PlanStatusExpr,
		Metrics:        metrics,
		Logger:         logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build backend client: %w", err)
	}
	return client, nil
}

func buildQueryCache(cfg *config.AppConfig, client redis.UniversalClient, logger *slog.Logger) *core.QueryCache {
	if client == nil || !cfg.IsCacheEnabled() {
		return nil
	}
	return core.NewQueryCache(core.QueryCacheOptions{
		Cache:  redisadapter.NewCacheRepo(client),
		TTL:    cfg.Cache.QueryTTL,
		Logger: logger,
	})
}

// NewServices wires the use-case services over the backend adapter and the optional cache.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service config is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	observability := buildObservability(logger, cfg.Observability)
	telemetry := service.Telemetry{Logger: logger, Metrics: observability.metricsSink()}

	api := deps.Backend
	if api == nil {
		var err error
		api, err = buildBackend(cfg, telemetry.Metrics, logger)
		if err != nil {
			if closeErr := observability.Close(); closeErr != nil {
				err = errors.Join(err, closeErr)
			}
			return ServiceContainer{}, err
		}
	}

	cache := buildQueryCache(cfg, deps.RedisClient, logger)

	return ServiceContainer{
		Guard: service.NewSessionGuard(service.SessionGuardOptions{
			Validator: api,
			Timeout:   cfg.Backend.ValidateTimeout,
			Telemetry: telemetry,
		}),
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Sessions:  api,
			Telemetry: telemetry,
		}),
		Schedules: service.NewScheduleService(service.ScheduleServiceOptions{
			Schedules: api,
			Cache:     cache,
			Telemetry: telemetry,
		}),
		Haircuts: service.NewHaircutService(service.HaircutServiceOptions{
			Haircuts:  api,
			Cache:     cache,
			Telemetry: telemetry,
		}),
		Profile: service.NewProfileService(service.ProfileServiceOptions{
			Sessions: api,
			Profiles: api,
		}),
		Subscriptions: service.NewSubscriptionService(service.SubscriptionServiceOptions{
			Sessions:  api,
			Billing:   api,
			Telemetry: telemetry,
		}),
		Cache:         cache,
		Observability: observability,
	}, nil
}
