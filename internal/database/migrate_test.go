package database

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateRequiresPool(t *testing.T) {
	var db *DB
	require.Error(t, db.Migrate(context.Background()))
	require.Error(t, (&DB{}).Migrate(context.Background()))
}

func TestEmbeddedMigrationsAreGooseAnnotated(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		data, err := fs.ReadFile(migrationsFS, "migrations/"+entry.Name())
		require.NoError(t, err)
		assert.Contains(t, string(data), "-- +goose Up", entry.Name())
		assert.Contains(t, string(data), "-- +goose Down", entry.Name())
	}
}
