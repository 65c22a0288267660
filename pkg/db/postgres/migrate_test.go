package postgres_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmorate/pkg/db/postgres"
)

func TestMigrateMissingDirectory(t *testing.T) {
	err := postgres.Migrate(context.Background(), "postgres://localhost:1/none", fstest.MapFS{}, "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), postgres.ErrOpenMigrationSource)
}

func TestNewInvalidDSN(t *testing.T) {
	db, err := postgres.New(context.Background(), "postgres://%zz", postgres.PoolOptions{})

	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), postgres.ErrParseConfig)
}
