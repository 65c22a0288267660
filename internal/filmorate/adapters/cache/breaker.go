package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"filmorate/internal/filmorate/ports/cache"
	"filmorate/pkg/logger"
)

// ErrCircuitOpen возвращается, пока кэш считается недоступным.
var ErrCircuitOpen = errors.New("cache circuit breaker is open")

const (
	LogCircuitTrip  = "cache circuit breaker tripped"
	LogCircuitTrial = "cache circuit breaker allowing trial request"
	LogCircuitReset = "cache circuit breaker reset"
)

// CircuitState - состояние предохранителя.
type CircuitState int

const (
	StateClosed CircuitState = iota
	StateOpen
	StateHalfOpen
)

// BreakerConfig задает порог ошибок и время до пробного запроса.
type BreakerConfig struct {
	ErrorThreshold int
	Cooldown       time.Duration
}

// GuardedCache пропускает Get и Set мимо недоступного кэша, пока предохранитель открыт.
// Delete и Incr выполняются всегда: пропущенная инвалидация оставила бы устаревший рейтинг.
// В полуоткрытом состоянии проходит один пробный Get или Set, остальные получают ErrCircuitOpen.
type GuardedCache struct {
	next cache.Cache
	cfg  BreakerConfig
	now  func() time.Time

	mu       sync.Mutex
	state    CircuitState
	failures int
	openedAt time.Time
	probing  bool
}

// NewGuardedCache оборачивает next предохранителем.
func NewGuardedCache(next cache.Cache, cfg BreakerConfig) *GuardedCache {
	if cfg.ErrorThreshold <= 0 {
		cfg.ErrorThreshold = 1
	}
	return &GuardedCache{next: next, cfg: cfg, now: time.Now}
}

func (g *GuardedCache) Get(ctx context.Context, key string) (string, error) {
	if !g.allow(ctx) {
		return "", ErrCircuitOpen
	}
	value, err := g.next.Get(ctx, key)
	g.record(ctx, err)
	return value, err
}

func (g *GuardedCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if !g.allow(ctx) {
		return ErrCircuitOpen
	}
	err := g.next.Set(ctx, key, value, ttl)
	g.record(ctx, err)
	return err
}

func (g *GuardedCache) Delete(ctx context.Context, keys ...string) error {
	err := g.next.Delete(ctx, keys...)
	g.record(ctx, err)
	return err
}

func (g *GuardedCache) Incr(ctx context.Context, key string) (int64, error) {
	value, err := g.next.Incr(ctx, key)
	g.record(ctx, err)
	return value, err
}

func (g *GuardedCache) Close() error {
	return g.next.Close()
}

// State возвращает текущее состояние предохранителя.
func (g *GuardedCache) State() CircuitState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *GuardedCache) allow(ctx context.Context) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case StateOpen:
		if g.now().Sub(g.openedAt) < g.cfg.Cooldown {
			return false
		}
		g.state = StateHalfOpen
		g.probing = true
		logger.Log(ctx).Info(ctx, LogCircuitTrial)
		return true
	case StateHalfOpen:
		return !g.probing
	default:
		return true
	}
}

func (g *GuardedCache) record(ctx context.Context, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.probing = false
	if err == nil {
		if g.state != StateClosed {
			logger.Log(ctx).Info(ctx, LogCircuitReset)
		}
		g.state = StateClosed
		g.failures = 0
		return
	}

	g.failures++
	if g.state == StateHalfOpen || (g.state == StateClosed && g.failures >= g.cfg.ErrorThreshold) {
		logger.Log(ctx).Warn(ctx, LogCircuitTrip, zap.Int("failures", g.failures), zap.Error(err))
		g.state = StateOpen
		g.openedAt = g.now()
	}
}
