package database_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventario/internal/config"
	"inventario/internal/database"
	"inventario/internal/repositories"
	"inventario/pkg/logger"
)

func openMemory(t *testing.T) repositories.Store {
	t.Helper()
	db, err := database.Open(config.DBConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Ping(context.Background(), db))
	return repositories.NewGORMStore(db)
}

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	_, err := database.Open(config.DBConfig{Driver: "oracle"}, logger.Nop())
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestSeed_PopulatesEmptyDatabaseOnce(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()

	require.NoError(t, database.Seed(ctx, store, logger.Nop()))
	require.NoError(t, database.Seed(ctx, store, logger.Nop()))

	categories, err := store.Categories().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	products, err := store.Products().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.Equal(t, categories[0].ID, p.CategoryID)
		assert.True(t, p.Price.IsPositive())
	}
}
