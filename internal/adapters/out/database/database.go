package database

import (
	"context"
	"fmt"
	"time"

	"fieldservice/internal/adapters/out/database/jobrepo"
	"fieldservice/internal/adapters/out/database/routerepo"

	"github.com/cockroachdb/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config selects and tunes the storage backend.
type Config struct {
	// Driver is DriverPostgres or DriverSQLite.
	Driver string

	// DSN is the PostgreSQL connection string.
	DSN string

	// SQLitePath is the SQLite database file.
	SQLitePath string

	// MaxOpenConns caps PostgreSQL connections. SQLite always uses one.
	MaxOpenConns int

	// LogLevel is the GORM logger level.
	LogLevel logger.LogLevel
}

// Open connects to the configured backend and prepares the connection pool.
func Open(config Config) (*gorm.DB, error) {
	if config.LogLevel == 0 {
		config.LogLevel = logger.Warn
	}
	gormConfig := &gorm.Config{
		Logger:  logger.Default.LogMode(config.LogLevel),
		NowFunc: func() time.Time { return time.Now().UTC() },
	}

	switch config.Driver {
	case DriverPostgres, "":
		db, err := gorm.Open(postgres.Open(config.DSN), gormConfig)
		if err != nil {
			return nil, errors.Wrap(err, "open postgres")
		}
		if config.MaxOpenConns > 0 {
			sqlDB, err := db.DB()
			if err != nil {
				return nil, errors.Wrap(err, "get underlying sql.DB")
			}
			sqlDB.SetMaxOpenConns(config.MaxOpenConns)
		}
		return db, nil

	case DriverSQLite:
		dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on&_txlock=immediate", config.SQLitePath)
		db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
		if err != nil {
			return nil, errors.Wrap(err, "open sqlite")
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "get underlying sql.DB")
		}
		// One connection serializes every transaction, which is the SQLite
		// form of the per-account exclusive section.
		sqlDB.SetMaxOpenConns(1)
		return db, nil

	default:
		return nil, errors.Newf("unknown database driver %q", config.Driver)
	}
}

// Migrate creates or updates the schema of jobs, routes and route_jobs.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&jobrepo.JobDTO{},
		&routerepo.RouteDTO{},
		&routerepo.RouteJobDTO{},
	)
	if err != nil {
		return errors.Wrap(err, "migrate schema")
	}
	return nil
}

// Ping checks the connection, used by the health endpoint.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
