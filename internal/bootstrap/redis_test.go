package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberpro/dashboard/config"
	"github.com/barberpro/dashboard/internal/testutil"
)

func TestBuildRedisTarget(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.RedisConfig
		wantDesc string
		wantErr  bool
	}{
		{
			name:     "direct address",
			cfg:      config.RedisConfig{URI: " localhost:6379 "},
			wantDesc: "localhost:6379",
		},
		{
			name:     "direct url",
			cfg:      config.RedisConfig{URI: "redis://:secret@cache.internal:6380/0"},
			wantDesc: "cache.internal:6380",
		},
		{
			name:    "direct without uri",
			cfg:     config.RedisConfig{URI: " "},
			wantErr: true,
		},
		{
			name:    "direct bad url",
			cfg:     config.RedisConfig{URI: "redis://host:notaport"},
			wantErr: true,
		},
		{
			name:     "cluster nodes",
			cfg:      config.RedisConfig{UseCluster: true, ClusterNodes: []string{" a:7000", "", "b:7001"}},
			wantDesc: "cluster:a:7000,b:7001",
		},
		{
			name:     "cluster seeded from uri",
			cfg:      config.RedisConfig{UseCluster: true, URI: "rediss://user:pw@seed:7000"},
			wantDesc: "cluster:seed:7000",
		},
		{
			name:    "cluster without addresses",
			cfg:     config.RedisConfig{UseCluster: true},
			wantErr: true,
		},
		{
			name:     "sentinel",
			cfg:      config.RedisConfig{UseSentinel: true, SentinelNodes: []string{"s1:26379"}, SentinelMasterName: "mymaster"},
			wantDesc: "sentinel:mymaster",
		},
		{
			name:    "sentinel without nodes",
			cfg:     config.RedisConfig{UseSentinel: true, SentinelNodes: []string{" "}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := buildRedisTarget(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer target.client.Close()
			assert.Equal(t, tt.wantDesc, target.desc)
		})
	}
}

func TestClusterSeedFromURI(t *testing.T) {
	seed, err := clusterSeedFromURI("", "fallback")
	require.NoError(t, err)
	assert.Equal(t, clusterSeed{password: "fallback"}, seed)

	seed, err = clusterSeedFromURI("node:7000", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "node:7000", seed.addr)
	assert.Equal(t, "fallback", seed.password)

	seed, err = clusterSeedFromURI("redis://ops:pw@node:7000", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "node:7000", seed.addr)
	assert.Equal(t, "ops", seed.username)
	assert.Equal(t, "pw", seed.password)
	assert.Nil(t, seed.tls)

	seed, err = clusterSeedFromURI("rediss://node:7000", "")
	require.NoError(t, err)
	assert.NotNil(t, seed.tls)
}

func TestRedactRedisAddr(t *testing.T) {
	redacted := redactRedisAddr("redis://user:pw@host:6379")
	assert.NotContains(t, redacted, "pw")
	assert.Contains(t, redacted, "host:6379")
	assert.Equal(t, "host:6379", redactRedisAddr("host:6379"))
	assert.Equal(t, "cluster:a:1", redactRedisAddr("cluster:a:1"))
}

func TestConnectRedis_Unreachable(t *testing.T) {
	_, err := ConnectRedis(context.Background(), RedisConnectConfig{
		Redis: config.RedisConfig{URI: "127.0.0.1:1"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping redis")
}

func TestConnectRedis_Available(t *testing.T) {
	addr, ok := testutil.GetTestRedisAddr(t)
	if !ok {
		t.Skip("Redis not available for testing")
	}

	client, err := ConnectRedis(context.Background(), RedisConnectConfig{
		Redis: config.RedisConfig{URI: addr},
	})
	require.NoError(t, err)
	require.NoError(t, client.Close())
}
