package config

import "time"

const defaultQueryTTL = 30 * time.Second

// RedisConfig contains Redis configuration.
type RedisConfig struct {
	URI                string   `env:"URI"                  envDefault:"localhost:6379"`
	Password           string   `env:"PASSWORD"             envDefault:""`
	SentinelNodes      []string `env:"SENTINEL_NODES"       envDefault:"localhost:26379"`
	SentinelMasterName string   `env:"SENTINEL_MASTER_NAME" envDefault:"mymaster"`
	SentinelPassword   string   `env:"SENTINEL_PASSWORD"    envDefault:""`
	UseSentinel        bool     `env:"USE_SENTINEL"         envDefault:"false"`
	ClusterNodes       []string `env:"CLUSTER_NODES"        envDefault:""`
	UseCluster         bool     `env:"USE_CLUSTER"          envDefault:"false"`
}

// CacheConfig contains query cache configuration (Redis-based).
// The cache only ever holds dashboard list payloads; credential validation is never cached.
type CacheConfig struct {
	Enabled bool `env:"CACHE_ENABLED" envDefault:"false"`

	// QueryTTL is the TTL for cached backend list responses.
	QueryTTL time.Duration `env:"CACHE_QUERY_TTL" envDefault:"30s"`
}

// Sanitize applies guardrails to cache configuration values.
func (c *CacheConfig) Sanitize() {
	if c.QueryTTL <= 0 {
		c.QueryTTL = defaultQueryTTL
	}
}
