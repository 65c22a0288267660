package logger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	ErrLoggerNotFound   = errors.New("logger not found in context")
	ErrInitGlobalLogger = errors.New("failed to initialize global logger")
)

type loggerKey struct{}

var global atomic.Pointer[Logger]

// fallback пишет только предупреждения и ошибки, пока глобальный logger не задан.
var fallback = sync.OnceValue(func() *Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	zapLogger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return &Logger{l: zap.NewNop()}
	}
	return &Logger{l: zapLogger.With(zap.String("logger", "fallback"))}
})

// NewContext возвращает контекст, несущий logger.
func NewContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext извлекает logger, положенный NewContext.
func FromContext(ctx context.Context) (*Logger, error) {
	if ctx == nil {
		return nil, ErrLoggerNotFound
	}
	if logger, ok := ctx.Value(loggerKey{}).(*Logger); ok {
		return logger, nil
	}
	return nil, ErrLoggerNotFound
}

// InitGlobalLoggerWithLevel создает глобальный logger, если он еще не задан.
func InitGlobalLoggerWithLevel(env Environment, level string) error {
	if global.Load() != nil {
		return nil
	}
	l, err := NewLogger(env, level)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInitGlobalLogger, err)
	}
	global.CompareAndSwap(nil, l)
	return nil
}

// SetGlobalLogger заменяет глобальный logger. nil возвращает резервный.
func SetGlobalLogger(logger *Logger) {
	global.Store(logger)
}

// Log возвращает logger из ctx, иначе глобальный, иначе резервный.
func Log(ctx context.Context) *Logger {
	if logger, err := FromContext(ctx); err == nil {
		return logger
	}
	if logger := global.Load(); logger != nil {
		return logger
	}
	return fallback()
}
