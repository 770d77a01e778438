// Package core provides the caching layer shared by the dashboard services.
package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CacheRepository defines the interface for caching operations.
// This follows the hexagonal architecture pattern where the core defines interfaces
// and the adapters provide implementations.
type CacheRepository interface {
	// Set stores a value in the cache with the given key and TTL.
	// If TTL is 0, the key will not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get retrieves a value from the cache by key.
	// Returns nil if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes a key from the cache.
	// Returns true if the key was deleted, false if it didn't exist.
	Delete(ctx context.Context, key string) (bool, error)

	// Health checks the health of the cache connection.
	Health(ctx context.Context) error
}

const queryKeyPrefix = "barberdash:query:"

// credentialNamespace scopes UUIDv5 cache keys; the raw credential never reaches the cache.
var credentialNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("barberdash/query-cache"))

// QueryCache stores backend list responses per credential as JSON.
// A QueryCache without a repository (or a nil *QueryCache) is a no-op,
// so callers never need to check whether caching is configured.
type QueryCache struct {
	cache  CacheRepository
	ttl    time.Duration
	logger *slog.Logger
}

// QueryCacheOptions bundles dependencies for NewQueryCache.
type QueryCacheOptions struct {
	Cache  CacheRepository
	TTL    time.Duration
	Logger *slog.Logger
}

// NewQueryCache creates a new QueryCache.
func NewQueryCache(opts QueryCacheOptions) *QueryCache {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryCache{
		cache:  opts.Cache,
		ttl:    opts.TTL,
		logger: logger.With("component", "query_cache"),
	}
}

// Enabled reports whether a cache repository is configured.
func (q *QueryCache) Enabled() bool {
	return q != nil && q.cache != nil
}

// Key returns the cache key for a named query of the given credential.
func (q *QueryCache) Key(credential, name string) string {
	return CredentialKeyPrefix(credential) + name
}

// CredentialKeyPrefix is the prefix shared by every cache key of one credential.
func CredentialKeyPrefix(credential string) string {
	scope := uuid.NewSHA1(credentialNamespace, []byte(credential))
	return queryKeyPrefix + scope.String() + ":"
}

// QueryKeyPattern matches every query cache key, in Redis glob syntax.
const QueryKeyPattern = queryKeyPrefix + "*"

// Load decodes the cached value for name into dst and reports whether it was found.
func (q *QueryCache) Load(ctx context.Context, credential, name string, dst any) (bool, error) {
	if !q.Enabled() {
		return false, nil
	}
	raw, err := q.cache.Get(ctx, q.Key(credential, name))
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", name, err)
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", name, err)
	}
	return true, nil
}

// Store encodes v as JSON and caches it under name with the configured TTL.
func (q *QueryCache) Store(ctx context.Context, credential, name string, v any) error {
	if !q.Enabled() {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", name, err)
	}
	if err := q.cache.Set(ctx, q.Key(credential, name), raw, q.ttl); err != nil {
		return fmt.Errorf("cache set %s: %w", name, err)
	}
	return nil
}

// Invalidate removes the named queries of a credential.
func (q *QueryCache) Invalidate(ctx context.Context, credential string, names ...string) error {
	if !q.Enabled() {
		return nil
	}
	var errs []error
	for _, name := range names {
		if _, err := q.cache.Delete(ctx, q.Key(credential, name)); err != nil {
			errs = append(errs, fmt.Errorf("cache delete %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Health pings the underlying cache. A disabled cache is always healthy.
func (q *QueryCache) Health(ctx context.Context) error {
	if !q.Enabled() {
		return nil
	}
	return q.cache.Health(ctx)
}

// Cached returns the cached value of name for credential, calling load and caching its
// result on a miss. Cache failures degrade to calling load; they are logged, not returned.
func Cached[T any](
	ctx context.Context,
	q *QueryCache,
	credential, name string,
	load func(context.Context) (T, error),
) (T, error) {
	if q.Enabled() {
		var cached T
		hit, err := q.Load(ctx, credential, name, &cached)
		if err != nil {
			q.logger.WarnContext(ctx, "query cache read failed", "query", name, "error", err)
		}
		if hit {
			return cached, nil
		}
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	if serr := q.Store(ctx, credential, name, v); serr != nil {
		q.logger.WarnContext(ctx, "query cache write failed", "query", name, "error", serr)
	}
	return v, nil
}

// QueryName joins query name parts into a cache name, e.g. "haircuts:true".
func QueryName(parts ...string) string {
	return strings.Join(parts, ":")
}
