package bootstrap

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/barberpro/dashboard/config"
)

const redisPingTimeout = 5 * time.Second

// RedisConnectConfig contains what ConnectRedis needs to reach the query cache.
type RedisConnectConfig struct {
	Redis  config.RedisConfig
	Logger *slog.Logger
}

// redisTarget is a constructed client plus a credential-free description for logs.
type redisTarget struct {
	client redis.UniversalClient
	desc   string
}

// ConnectRedis builds a cluster, sentinel, or direct client and verifies it answers.
//
//nolint:ireturn // the concrete client depends on configuration.
func ConnectRedis(ctx context.Context, cfg RedisConnectConfig) (redis.UniversalClient, error) {
	target, err := buildRedisTarget(cfg.Redis)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if pingErr := target.client.Ping(pingCtx).Err(); pingErr != nil {
		if closeErr := target.client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if cfg.Logger != nil {
		cfg.Logger.InfoContext(ctx, "redis connected", "addr", redactRedisAddr(target.desc))
	}
	return target.client, nil
}

func buildRedisTarget(cfg config.RedisConfig) (redisTarget, error) {
	switch {
	case cfg.UseCluster:
		return clusterTarget(cfg)
	case cfg.UseSentinel:
		return sentinelTarget(cfg)
	default:
		return directTarget(cfg)
	}
}

func clusterTarget(cfg config.RedisConfig) (redisTarget, error) {
	opts := &redis.ClusterOptions{
		Addrs:    normalizeAddrs(cfg.ClusterNodes),
		Password: cfg.Password,
	}

	// Without explicit nodes the URI seeds the cluster.
	if len(opts.Addrs) == 0 {
		seed, err := clusterSeedFromURI(cfg.URI, cfg.Password)
		if err != nil {
			return redisTarget{}, err
		}
		if seed.addr != "" {
			opts.Addrs = []string{seed.addr}
			opts.Username = seed.username
			opts.Password = seed.password
			opts.TLSConfig = seed.tls
		}
	}

	if len(opts.Addrs) == 0 {
		return redisTarget{}, errors.New("redis cluster configuration requires at least one address")
	}
	return redisTarget{
		client: redis.NewClusterClient(opts),
		desc:   "cluster:" + strings.Join(opts.Addrs, ","),
	}, nil
}

func sentinelTarget(cfg config.RedisConfig) (redisTarget, error) {
	nodes := normalizeAddrs(cfg.SentinelNodes)
	if len(nodes) == 0 {
		return redisTarget{}, errors.New("redis sentinel configuration requires at least one sentinel node")
	}

	return redisTarget{
		client: redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:       cfg.SentinelMasterName,
			SentinelAddrs:    nodes,
			Password:         cfg.Password,
			SentinelPassword: cfg.SentinelPassword,
		}),
		desc: "sentinel:" + cfg.SentinelMasterName,
	}, nil
}

func directTarget(cfg config.RedisConfig) (redisTarget, error) {
	uri := strings.TrimSpace(cfg.URI)
	if uri == "" {
		return redisTarget{}, errors.New("redis direct configuration requires a URI")
	}

	if !isRedisURL(uri) {
		return redisTarget{
			client: redis.NewClient(&redis.Options{Addr: uri, Password: cfg.Password}),
			desc:   uri,
		}, nil
	}

	opt, err := redis.ParseURL(uri)
	if err != nil {
		return redisTarget{}, fmt.Errorf("parse redis url: %w", err)
	}
	if opt.Password == "" {
		opt.Password = cfg.Password
	}
	return redisTarget{client: redis.NewClient(opt), desc: opt.Addr}, nil
}

type clusterSeed struct {
	addr     string
	username string
	password string
	tls      *tls.Config
}

func clusterSeedFromURI(uri, defaultPassword string) (clusterSeed, error) {
	seed := clusterSeed{password: defaultPassword}

	trimmed := strings.TrimSpace(uri)
	if trimmed == "" {
		return seed, nil
	}
	if !isRedisURL(trimmed) {
		seed.addr = trimmed
		return seed, nil
	}

	opt, err := redis.ParseURL(trimmed)
	if err != nil {
		return seed, fmt.Errorf("parse redis cluster url: %w", err)
	}
	seed.addr = opt.Addr
	seed.username = opt.Username
	seed.tls = opt.TLSConfig
	if opt.Password != "" {
		seed.password = opt.Password
	}
	return seed, nil
}

func normalizeAddrs(raw []string) []string {
	result := make([]string, 0, len(raw))
	for _, addr := range raw {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func isRedisURL(value string) bool {
	return strings.HasPrefix(value, "redis://") || strings.HasPrefix(value, "rediss://")
}

// redactRedisAddr strips credentials from an address before it is logged.
func redactRedisAddr(addr string) string {
	if u, err := url.Parse(addr); err == nil && u.User != nil {
		u.User = url.User("*")
		return u.Redacted()
	}
	if i := strings.LastIndex(addr, "@"); i > -1 {
		return addr[i+1:]
	}
	return addr
}
