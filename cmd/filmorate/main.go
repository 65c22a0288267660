package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"filmorate/internal/filmorate/adapters/cache"
	httpServer "filmorate/internal/filmorate/adapters/http"
	"filmorate/internal/filmorate/adapters/memory"
	"filmorate/internal/filmorate/adapters/postgres"
	"filmorate/internal/filmorate/app"
	"filmorate/internal/filmorate/config"
	"filmorate/internal/filmorate/db"
	cacheport "filmorate/internal/filmorate/ports/cache"
	"filmorate/internal/filmorate/ports/repositories"
	"filmorate/pkg/logger"
	"filmorate/pkg/retry"
	"filmorate/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "FILMORATE_LOGGER_MODE"
	EnvLoggerLevel = "FILMORATE_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitStorage          = "failed to initialize storage"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrStartHTTPServer      = "failed to start HTTP server"
	ErrShutdown             = "graceful shutdown finished with errors"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "filmorate service started"
	LogServiceShutdownDone = "filmorate service shutdown complete"
	LogInitStorage         = "initializing storage"
	LogInitCache           = "initializing ranking cache"
	LogCacheDisabled       = "ranking cache disabled"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingDatabase     = "closing database"
	LogClosingCache        = "closing Redis connection"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == string(logger.Production) {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		envFile := os.Getenv(config.EnvFileVariable)
		if envFile == "" {
			envFile = config.DefaultEnvFile
		}

		cfg, err := config.Load(ctx, envFile)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		var hooks []shutdown.Hook

		log.Info(ctx, LogInitStorage, zap.String("backend", string(cfg.Storage.Backend)))
		factory, closeStorage, err := openStorage(ctx, cfg)
		if err != nil {
			log.Error(ctx, ErrInitStorage, zap.Error(err))
			exitCode = 1
			return
		}
		if closeStorage != nil {
			hooks = append(hooks, closeStorage)
		}

		var rankingCache cacheport.Cache
		if cfg.Redis.Enabled {
			log.Info(ctx, LogInitCache, zap.String("address", cfg.Redis.GetAddress()))
			redisCache, err := retry.Do(ctx, "redis", cfg.Storage.RetryConfig(),
				func(ctx context.Context) (cacheport.Cache, error) {
					return cache.NewRedisCache(ctx, &cfg.Redis)
				})
			if err != nil {
				log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
				exitCode = 1
				return
			}
			rankingCache = cache.NewGuardedCache(redisCache, cache.BreakerConfig{
				ErrorThreshold: cfg.Redis.BreakerThreshold,
				Cooldown:       cfg.Redis.BreakerCooldown,
			})
			hooks = append(hooks, func(ctx context.Context) error {
				log.Info(ctx, LogClosingCache)
				return rankingCache.Close()
			})
		} else {
			log.Info(ctx, LogCacheDisabled)
		}

		log.Info(ctx, LogInitServices)
		services := app.NewServices(factory, app.Options{
			Cache:      rankingCache,
			PopularTTL: cfg.Redis.PopularTTL,
		})

		log.Info(ctx, LogInitHTTPServer)
		server := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})
		httpServer.SetupRouter(server, services, cfg.HTTP.PopularDefault, log)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := server.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		// HTTP сервер останавливается раньше хранилищ.
		stopHTTP := func(ctx context.Context) error {
			log.Info(ctx, LogStoppingHTTP)
			return server.ShutdownWithContext(ctx)
		}
		if err := shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(), stopHTTP); err != nil {
			log.Warn(ctx, ErrShutdown, zap.Error(err))
		}
		if err := shutdown.Run(ctx, cfg.Shutdown.GetTimeout(), hooks...); err != nil {
			log.Warn(ctx, ErrShutdown, zap.Error(err))
		}

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// openStorage выбирает хранилище по конфигурации. Возвращаемый hook закрывает
// соединения и может быть nil.
func openStorage(ctx context.Context, cfg *config.Config) (repositories.Factory, shutdown.Hook, error) {
	if cfg.Storage.Backend != config.BackendPostgres {
		return memory.NewRepositoryFactory(), nil, nil
	}

	database, err := retry.Do(ctx, "postgres", cfg.Storage.RetryConfig(), func(ctx context.Context) (*db.DB, error) {
		return db.New(ctx, &cfg.Postgres)
	})
	if err != nil {
		return nil, nil, err
	}

	closeDB := func(ctx context.Context) error {
		logger.Log(ctx).Info(ctx, LogClosingDatabase)
		database.Close(ctx)
		return nil
	}
	return postgres.NewRepositoryFactory(database.Pool()), closeDB, nil
}
