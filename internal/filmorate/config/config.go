// Package config содержит конфигурацию сервиса Filmorate.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "filmorate/pkg/config"
	"filmorate/pkg/logger"
)

// Константы ошибок и сообщений для конфигурации.
const (
	ServiceName         = "filmorate"
	LogConfigSummary    = "filmorate configuration"
	ErrFailedLoadConfig = "failed to load configuration"
	ErrInvalidConfig    = "invalid configuration"
)

// EnvFileVariable переопределяет путь к .env файлу; по умолчанию DefaultEnvFile.
const (
	EnvFileVariable = "FILMORATE_ENV_FILE"
	DefaultEnvFile  = ".env"
)

// Config представляет полную конфигурацию сервиса.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Storage  StorageConfig  `yaml:"storage"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
}

// Load загружает конфигурацию из envFile (если он есть) и переменных окружения.
func Load(ctx context.Context, envFile string) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, envFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrInvalidConfig, err)
	}

	logger.Log(ctx).Info(ctx, LogConfigSummary,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("storage_backend", string(cfg.Storage.Backend)),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout))

	return cfg, nil
}

// Validate проверяет значения, которые cleanenv не может проверить сам.
func (c *Config) Validate() error {
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http port %d out of range", c.HTTP.Port)
	}
	return nil
}
