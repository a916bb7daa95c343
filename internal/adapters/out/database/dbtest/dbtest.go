// Package dbtest opens throwaway databases for tests outside the database package.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"fieldservice/internal/adapters/out/database"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLite opens a migrated SQLite database in a temporary file that lives as
// long as the test.
func SQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(database.Config{
		Driver:     database.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "fieldservice.db"),
		LogLevel:   logger.Silent,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// PostgresContainer starts a PostgreSQL container and returns its connection
// string. The caller terminates the container.
func PostgresContainer(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, "", err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, "", err
	}
	return container, dsn, nil
}

// Truncate empties every table of the schema.
func Truncate(db *gorm.DB) error {
	if db.Dialector.Name() == database.DriverPostgres {
		return db.Exec("TRUNCATE TABLE route_jobs, routes, jobs").Error
	}
	for _, table := range []string{"route_jobs", "routes", "jobs"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
