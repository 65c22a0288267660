package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockCache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *mockCache) Incr(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCache) Close() error {
	return m.Called().Error(0)
}

func TestGuardedCacheTripsAndRecovers(t *testing.T) {
	ctx := context.Background()
	redisErr := errors.New("connection refused")
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	next := new(mockCache)
	guarded := NewGuardedCache(next, BreakerConfig{ErrorThreshold: 2, Cooldown: 10 * time.Second})
	guarded.now = func() time.Time { return now }

	next.On("Get", ctx, "k").Return("", redisErr).Twice()

	for i := 0; i < 2; i++ {
		_, err := guarded.Get(ctx, "k")
		require.ErrorIs(t, err, redisErr)
	}
	assert.Equal(t, StateOpen, guarded.State())

	_, err := guarded.Get(ctx, "k")
	require.ErrorIs(t, err, ErrCircuitOpen)
	require.ErrorIs(t, guarded.Set(ctx, "k", "v", time.Minute), ErrCircuitOpen)

	now = now.Add(11 * time.Second)
	next.On("Get", ctx, "k").Return("v", nil).Once()

	value, err := guarded.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
	assert.Equal(t, StateClosed, guarded.State())

	next.AssertExpectations(t)
}

func TestGuardedCacheHalfOpenFailureReopens(t *testing.T) {
	ctx := context.Background()
	redisErr := errors.New("timeout")
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	next := new(mockCache)
	guarded := NewGuardedCache(next, BreakerConfig{ErrorThreshold: 1, Cooldown: time.Second})
	guarded.now = func() time.Time { return now }

	next.On("Set", ctx, "k", "v", time.Minute).Return(redisErr).Twice()

	require.ErrorIs(t, guarded.Set(ctx, "k", "v", time.Minute), redisErr)
	assert.Equal(t, StateOpen, guarded.State())

	now = now.Add(2 * time.Second)
	require.ErrorIs(t, guarded.Set(ctx, "k", "v", time.Minute), redisErr)
	assert.Equal(t, StateOpen, guarded.State())

	require.ErrorIs(t, guarded.Set(ctx, "k", "v", time.Minute), ErrCircuitOpen)
	next.AssertExpectations(t)
}

func TestGuardedCacheDeleteBypassesOpenBreaker(t *testing.T) {
	ctx := context.Background()

	next := new(mockCache)
	guarded := NewGuardedCache(next, BreakerConfig{ErrorThreshold: 1, Cooldown: time.Hour})

	next.On("Get", ctx, "k").Return("", errors.New("down")).Once()
	_, _ = guarded.Get(ctx, "k")
	require.Equal(t, StateOpen, guarded.State())

	next.On("Delete", ctx, []string{"k"}).Return(nil).Once()
	require.NoError(t, guarded.Delete(ctx, "k"))
	assert.Equal(t, StateClosed, guarded.State())

	next.On("Close").Return(nil).Once()
	require.NoError(t, guarded.Close())
	next.AssertExpectations(t)
}

func TestGuardedCacheHalfOpenAdmitsSingleTrial(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	next := new(mockCache)
	guarded := NewGuardedCache(next, BreakerConfig{ErrorThreshold: 1, Cooldown: time.Second})
	guarded.now = func() time.Time { return now }

	next.On("Get", ctx, "k").Return("", errors.New("down")).Once()
	_, _ = guarded.Get(ctx, "k")
	require.Equal(t, StateOpen, guarded.State())

	now = now.Add(2 * time.Second)

	started := make(chan struct{})
	release := make(chan struct{})
	next.On("Get", ctx, "k").Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return("v", nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		value, err := guarded.Get(ctx, "k")
		assert.NoError(t, err)
		assert.Equal(t, "v", value)
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("trial request did not reach the cache")
	}
	assert.Equal(t, StateHalfOpen, guarded.State())

	_, err := guarded.Get(ctx, "k")
	require.ErrorIs(t, err, ErrCircuitOpen)
	require.ErrorIs(t, guarded.Set(ctx, "k", "v", time.Minute), ErrCircuitOpen)

	close(release)
	wg.Wait()
	assert.Equal(t, StateClosed, guarded.State())

	next.On("Set", ctx, "k", "v", time.Minute).Return(nil).Once()
	require.NoError(t, guarded.Set(ctx, "k", "v", time.Minute))
	next.AssertExpectations(t)
}

func TestGuardedCacheIncrBypassesOpenBreaker(t *testing.T) {
	ctx := context.Background()

	next := new(mockCache)
	guarded := NewGuardedCache(next, BreakerConfig{ErrorThreshold: 1, Cooldown: time.Hour})

	next.On("Set", ctx, "k", "v", time.Minute).Return(errors.New("down")).Once()
	_ = guarded.Set(ctx, "k", "v", time.Minute)
	require.Equal(t, StateOpen, guarded.State())

	next.On("Incr", ctx, "gen").Return(int64(4), nil).Once()
	value, err := guarded.Incr(ctx, "gen")
	require.NoError(t, err)
	assert.Equal(t, int64(4), value)
	assert.Equal(t, StateClosed, guarded.State())
	next.AssertExpectations(t)
}
