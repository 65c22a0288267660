// Package db поднимает хранилище Postgres для Filmorate: применяет встроенные
// миграции и открывает пул соединений.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"filmorate/internal/filmorate/config"
	"filmorate/migrations"
	"filmorate/pkg/db/postgres"
	"filmorate/pkg/logger"
)

const (
	LogDBInitializing    = "initializing filmorate database"
	LogDBInitialized     = "filmorate database initialized successfully"
	LogMigrationStarting = "applying filmorate schema migrations"
)

const (
	ErrDBMigrations      = "failed to apply filmorate database migrations"
	ErrDBConnection      = "failed to connect to filmorate database"
	ErrDBCheckConnection = "error checking the database connection"
)

// DB представляет соединение с базой данных Filmorate.
type DB struct {
	database *postgres.Database
}

// New применяет миграции и создает пул соединений.
func New(ctx context.Context, cfg *config.PostgresConfig) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int("min_conn", cfg.MinConn),
		zap.Int("max_conn", cfg.MaxConn))

	log.Info(ctx, LogMigrationStarting, zap.String("migrations_dir", migrations.FilmorateDir))
	if err := postgres.Migrate(ctx, cfg.GetConnectionURL(), migrations.FS, migrations.FilmorateDir); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	database, err := postgres.New(ctx, cfg.GetDSN(), postgres.PoolOptions{
		MinConns:          cfg.MinConn,
		MaxConns:          cfg.MaxConn,
		MaxConnLifetime:   cfg.MaxConnLifetime,
		HealthCheckPeriod: cfg.HealthCheck,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	log.Info(ctx, LogDBInitialized)

	return &DB{database: database}, nil
}

// Close закрывает пул соединений.
func (db *DB) Close(ctx context.Context) {
	db.database.Close(ctx)
}

// Pool возвращает пул соединений.
func (db *DB) Pool() *pgxpool.Pool {
	return db.database.Pool()
}

// Ping проверяет соединение с базой данных.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.database.Ping(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrDBCheckConnection, err)
	}
	return nil
}
