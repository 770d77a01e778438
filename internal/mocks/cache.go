package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/barberpro/dashboard/internal/core"
)

var _ core.CacheRepository = (*MemoryCache)(nil)

// MemoryCache is a hand-written in-memory CacheRepository for service tests.
// TTLs are recorded but never expire entries.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	ttls    map[string]time.Duration

	// SetErr, when non-nil, is consulted by Set; a non-nil result fails the write.
	SetErr func(key string, value []byte) error
	// HealthErr is returned by Health.
	HealthErr error
}

// NewMemoryCache returns an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetErr != nil {
		if err := m.SetErr(key, value); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = append([]byte(nil), value...)
	m.ttls[key] = ttl
	return nil
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryCache) Delete(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	delete(m.entries, key)
	delete(m.ttls, key)
	return ok, nil
}

func (m *MemoryCache) Health(context.Context) error { return m.HealthErr }

// Len returns the number of stored entries.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// TTL returns the TTL the key was last stored with.
func (m *MemoryCache) TTL(key string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ttls[key]
}
