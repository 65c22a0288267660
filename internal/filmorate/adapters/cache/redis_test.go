package cache_test

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmorate/internal/filmorate/adapters/cache"
	"filmorate/internal/filmorate/config"
)

func mockRedisServer(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	host, portStr, err := net.SplitHostPort(s.Addr())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	return s, &config.RedisConfig{
		Enabled:        true,
		Host:           host,
		Port:           port,
		ConnectTimeout: time.Second,
		ReadTimeout:    time.Second,
		WriteTimeout:   time.Second,
		PoolSize:       2,
		PopularTTL:     time.Minute,
	}
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	server, cfg := mockRedisServer(t)

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisCache.Close() })

	t.Run("missing key returns empty string", func(t *testing.T) {
		value, err := redisCache.Get(ctx, "films:popular")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("set uses default ttl", func(t *testing.T) {
		require.NoError(t, redisCache.Set(ctx, "films:popular", "[]", 0))

		value, err := redisCache.Get(ctx, "films:popular")
		require.NoError(t, err)
		assert.Equal(t, "[]", value)
		assert.Equal(t, time.Minute, server.TTL("films:popular"))
	})

	t.Run("entry expires", func(t *testing.T) {
		require.NoError(t, redisCache.Set(ctx, "short", "v", time.Second))
		server.FastForward(2 * time.Second)

		value, err := redisCache.Get(ctx, "short")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("delete removes keys", func(t *testing.T) {
		require.NoError(t, redisCache.Set(ctx, "a", "1", 0))
		require.NoError(t, redisCache.Set(ctx, "b", "2", 0))
		require.NoError(t, redisCache.Delete(ctx, "a", "b"))
		require.NoError(t, redisCache.Delete(ctx))

		assert.False(t, server.Exists("a"))
		assert.False(t, server.Exists("b"))
	})

	t.Run("incr counts from zero", func(t *testing.T) {
		for want := int64(1); want <= 3; want++ {
			value, err := redisCache.Incr(ctx, "generation")
			require.NoError(t, err)
			assert.Equal(t, want, value)
		}

		stored, err := server.Get("generation")
		require.NoError(t, err)
		assert.Equal(t, "3", stored)
		assert.Zero(t, server.TTL("generation"))
	})

	t.Run("incr rejects non-integer value", func(t *testing.T) {
		require.NoError(t, redisCache.Set(ctx, "text", "abc", 0))

		_, err := redisCache.Incr(ctx, "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), cache.ErrorFailedToIncr)
	})
}

func TestNewRedisCacheUnavailable(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := &config.RedisConfig{Host: "127.0.0.1", Port: port, ConnectTimeout: 200 * time.Millisecond}

	redisCache, err := cache.NewRedisCache(context.Background(), cfg)

	require.Error(t, err)
	assert.Nil(t, redisCache)
	assert.Contains(t, err.Error(), cache.ErrorFailedToConnect)
}
