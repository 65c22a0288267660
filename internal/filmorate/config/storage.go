package config

import (
	"fmt"
	"time"

	"filmorate/pkg/retry"
)

// Backend - тип хранилища сущностей.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendPostgres Backend = "postgres"
)

// StorageConfig выбирает хранилище при старте процесса.
type StorageConfig struct {
	Backend Backend `yaml:"backend" env:"FILMORATE_STORAGE_BACKEND" env-default:"memory"`
	// Попытки подключения к Postgres и Redis при старте.
	ConnectAttempts int           `yaml:"connect_attempts" env:"FILMORATE_STORAGE_CONNECT_ATTEMPTS" env-default:"5"`
	ConnectBackoff  time.Duration `yaml:"connect_backoff" env:"FILMORATE_STORAGE_CONNECT_BACKOFF" env-default:"500ms"`
}

// Validate проверяет, что бэкенд известен.
func (c *StorageConfig) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendPostgres:
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q", c.Backend)
	}
}

// RetryConfig возвращает настройки повторных подключений при старте.
func (c *StorageConfig) RetryConfig() retry.Config {
	cfg := retry.DefaultConfig()
	cfg.MaxAttempts = c.ConnectAttempts
	cfg.InitialBackoff = c.ConnectBackoff
	cfg.MaxBackoff = 10 * c.ConnectBackoff
	return cfg
}
