// Package shutdown предоставляет функциональность для корректного завершения приложения
// путем ожидания и обработки сигналов SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"filmorate/pkg/logger"
)

// ErrShutdownTimeout возвращается, если хуки не уложились в timeout.
var ErrShutdownTimeout = errors.New("shutdown timed out")

const (
	msgSignalReceived  = "shutdown signal received"
	msgContextDone     = "parent context cancelled, shutting down"
	msgHookFailed      = "shutdown hook failed"
	msgShutdownTimeout = "shutdown hooks did not finish in time"
	msgShutdownDone    = "shutdown completed"
)

// Hook - функция освобождения ресурса.
type Hook func(context.Context) error

// Wait блокирует выполнение до получения сигнала SIGINT или SIGTERM либо отмены ctx,
// затем выполняет хуки через Run.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	log := logger.Log(ctx)

	select {
	case sig := <-sigCh:
		log.Info(ctx, msgSignalReceived, zap.String("signal", sig.String()))
	case <-ctx.Done():
		log.Info(ctx, msgContextDone)
	}

	return Run(ctx, timeout, hooks...)
}

// Run параллельно выполняет хуки в рамках timeout и возвращает их объединенные ошибки.
// Отмена ctx на хуки не распространяется.
func Run(ctx context.Context, timeout time.Duration, hooks ...Hook) error {
	log := logger.Log(ctx)

	hookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i, hook := range hooks {
		wg.Add(1)
		go func(idx int, fn Hook) {
			defer wg.Done()
			if err := fn(hookCtx); err != nil {
				log.Error(ctx, msgHookFailed, zap.Int("hook", idx), zap.Error(err))
				mu.Lock()
				errs = append(errs, fmt.Errorf("hook %d: %w", idx, err))
				mu.Unlock()
			}
		}(i, hook)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(ctx, msgShutdownDone)
	case <-hookCtx.Done():
		log.Warn(ctx, msgShutdownTimeout, zap.Duration("timeout", timeout))
		mu.Lock()
		errs = append(errs, ErrShutdownTimeout)
		mu.Unlock()
	}

	mu.Lock()
	defer mu.Unlock()
	return errors.Join(errs...)
}
