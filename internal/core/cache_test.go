package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -source=cache.go -destination=cache_mock_test.go -package=core

type cachedItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestQueryCache(t *testing.T) (*QueryCache, *MockCacheRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := NewMockCacheRepository(ctrl)
	return NewQueryCache(QueryCacheOptions{Cache: repo, TTL: 30 * time.Second}), repo
}

func TestQueryCache_KeyIsCredentialScoped(t *testing.T) {
	t.Parallel()
	q := NewQueryCache(QueryCacheOptions{})

	a := q.Key("token-a", "schedules")
	b := q.Key("token-b", "schedules")

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, q.Key("token-a", "schedules"), "keys must be deterministic")
	assert.True(t, strings.HasPrefix(a, "barberdash:query:"))
	assert.True(t, strings.HasSuffix(a, ":schedules"))
	assert.NotContains(t, a, "token-a", "raw credential must not appear in the key")
}

func TestCached(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setup     func(q *QueryCache, repo *MockCacheRepository)
		load      func(context.Context) ([]cachedItem, error)
		want      []cachedItem
		wantErr   bool
		wantLoads int
	}{
		{
			name: "cache hit skips load",
			setup: func(q *QueryCache, repo *MockCacheRepository) {
				repo.EXPECT().Get(gomock.Any(), q.Key("tok", "haircuts:true")).
					Return([]byte(`[{"id":"1","name":"Fade"}]`), nil)
			},
			want:      []cachedItem{{ID: "1", Name: "Fade"}},
			wantLoads: 0,
		},
		{
			name: "cache miss loads and stores",
			setup: func(q *QueryCache, repo *MockCacheRepository) {
				key := q.Key("tok", "haircuts:true")
				repo.EXPECT().Get(gomock.Any(), key).Return(nil, nil)
				repo.EXPECT().Set(gomock.Any(), key, []byte(`[{"id":"2","name":"Beard"}]`), 30*time.Second).Return(nil)
			},
			load: func(context.Context) ([]cachedItem, error) {
				return []cachedItem{{ID: "2", Name: "Beard"}}, nil
			},
			want:      []cachedItem{{ID: "2", Name: "Beard"}},
			wantLoads: 1,
		},
		{
			name: "cache read error degrades to load",
			setup: func(_ *QueryCache, repo *MockCacheRepository) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
				repo.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			load: func(context.Context) ([]cachedItem, error) {
				return []cachedItem{{ID: "3"}}, nil
			},
			want:      []cachedItem{{ID: "3"}},
			wantLoads: 1,
		},
		{
			name: "load error is returned and nothing is stored",
			setup: func(_ *QueryCache, repo *MockCacheRepository) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			load: func(context.Context) ([]cachedItem, error) {
				return nil, errors.New("backend down")
			},
			wantErr:   true,
			wantLoads: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q, repo := newTestQueryCache(t)
			tt.setup(q, repo)

			loads := 0
			load := func(ctx context.Context) ([]cachedItem, error) {
				loads++
				if tt.load == nil {
					t.Fatal("load must not be called")
				}
				return tt.load(ctx)
			}

			got, err := Cached(context.Background(), q, "tok", "haircuts:true", load)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, tt.wantLoads, loads)
		})
	}
}

func TestQueryCache_Invalidate(t *testing.T) {
	t.Parallel()
	q, repo := newTestQueryCache(t)

	repo.EXPECT().Delete(gomock.Any(), q.Key("tok", "haircuts:true")).Return(true, nil)
	repo.EXPECT().Delete(gomock.Any(), q.Key("tok", "haircuts:false")).Return(false, errors.New("boom"))

	err := q.Invalidate(context.Background(), "tok", "haircuts:true", "haircuts:false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "haircuts:false")
}

func TestQueryCache_Disabled(t *testing.T) {
	t.Parallel()
	var nilCache *QueryCache
	disabled := NewQueryCache(QueryCacheOptions{})

	for _, q := range []*QueryCache{nilCache, disabled} {
		assert.False(t, q.Enabled())
		hit, err := q.Load(context.Background(), "tok", "schedules", &[]cachedItem{})
		require.NoError(t, err)
		assert.False(t, hit)
		require.NoError(t, q.Store(context.Background(), "tok", "schedules", []cachedItem{}))
		require.NoError(t, q.Invalidate(context.Background(), "tok", "schedules"))
		require.NoError(t, q.Health(context.Background()))

		got, err := Cached(context.Background(), q, "tok", "schedules", func(context.Context) ([]cachedItem, error) {
			return []cachedItem{{ID: "x"}}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, []cachedItem{{ID: "x"}}, got)
	}
}

func TestQueryName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "haircuts:true", QueryName("haircuts", "true"))
	assert.Equal(t, "schedules", QueryName("schedules"))
}
