package config

import (
	"fmt"
	"time"
)

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host            string        `yaml:"host" env:"FILMORATE_POSTGRES_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"FILMORATE_POSTGRES_PORT" env-default:"5432"`
	User            string        `yaml:"user" env:"FILMORATE_POSTGRES_USER" env-default:"postgres"`
	Password        string        `yaml:"password" env:"FILMORATE_POSTGRES_PASSWORD" env-default:"postgres"`
	Database        string        `yaml:"database" env:"FILMORATE_POSTGRES_DB" env-default:"filmorate"`
	MinConn         int           `yaml:"min_conn" env:"FILMORATE_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn         int           `yaml:"max_conn" env:"FILMORATE_POSTGRES_MAX_CONN" env-default:"10"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"FILMORATE_POSTGRES_MAX_CONN_LIFETIME" env-default:"1h"`
	HealthCheck     time.Duration `yaml:"health_check" env:"FILMORATE_POSTGRES_HEALTH_CHECK" env-default:"1m"`
}

// GetDSN возвращает строку подключения к Postgres.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL возвращает URL-строку подключения для миграций.
func (p *PostgresConfig) GetConnectionURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Database)
}
