// Package retry повторяет операцию с экспоненциальной задержкой.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"filmorate/pkg/logger"
)

// ErrContextCanceled возвращается, если ctx отменен во время ожидания следующей попытки.
var ErrContextCanceled = errors.New("context was canceled during retry")

const (
	LogRetryAttempt     = "retry attempt"
	LogRetrySuccess     = "retry succeeded"
	LogRetryMaxAttempts = "retry max attempts reached"
)

// Config задает число попыток и задержки между ними.
type Config struct {
	// MaxAttempts включает первую попытку.
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	BackoffFactor  float64
	// ShouldRetry решает, повторять ли попытку после err. nil - повторять всё, кроме отмены контекста.
	ShouldRetry func(error) bool
}

// DefaultConfig возвращает настройки по умолчанию.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     time.Second,
		BackoffFactor:  2.0,
	}
}

func defaultShouldRetry(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Do вызывает op, пока она не вернет nil, неповторяемую ошибку или не кончатся попытки.
func Do[T any](ctx context.Context, name string, cfg Config, op func(context.Context) (T, error)) (T, error) {
	log := logger.Log(ctx).With(zap.String("retry", name))

	shouldRetry := cfg.ShouldRetry
	if shouldRetry == nil {
		shouldRetry = defaultShouldRetry
	}
	attempts := max(cfg.MaxAttempts, 1)
	backoff := cfg.InitialBackoff

	var zero T
	for attempt := 1; ; attempt++ {
		result, err := op(ctx)
		if err == nil {
			if attempt > 1 {
				log.Info(ctx, LogRetrySuccess, zap.Int("attempts", attempt))
			}
			return result, nil
		}
		if !shouldRetry(err) {
			return zero, err
		}
		if attempt >= attempts {
			log.Warn(ctx, LogRetryMaxAttempts, zap.Int("attempts", attempt), zap.Error(err))
			return zero, err
		}

		log.Info(ctx, LogRetryAttempt,
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err))

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return zero, fmt.Errorf("%w: %w", ErrContextCanceled, ctx.Err())
		}

		if cfg.BackoffFactor > 1 {
			backoff = time.Duration(float64(backoff) * cfg.BackoffFactor)
		}
		if cfg.MaxBackoff > 0 && backoff > cfg.MaxBackoff {
			backoff = cfg.MaxBackoff
		}
	}
}
