package cmd

import (
	"fmt"
	"time"

	"fieldservice/internal/adapters/out/database"
	"fieldservice/internal/pkg/retry"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string

	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	DBSQLitePath string

	TxMaxAttempts    int
	TxInitialBackoff time.Duration
	TxMaxBackoff     time.Duration
	TxTimeout        time.Duration

	LogLevel  string
	LogFormat string
}

// SetDefaults registers the value of every key that may be left unset.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", "8080")

	v.SetDefault("DB_DRIVER", database.DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "fieldservice")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_SQLITE_PATH", "fieldservice.db")

	defaults := retry.DefaultConfig()
	v.SetDefault("TX_MAX_ATTEMPTS", defaults.MaxAttempts)
	v.SetDefault("TX_INITIAL_BACKOFF", defaults.InitialBackoff)
	v.SetDefault("TX_MAX_BACKOFF", defaults.MaxBackoff)
	v.SetDefault("TX_TIMEOUT", defaults.Timeout)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// LoadConfig reads the configuration from the environment, falling back to
// the defaults of SetDefaults.
func LoadConfig(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	config := Config{
		HTTPPort:         v.GetString("HTTP_PORT"),
		DBDriver:         v.GetString("DB_DRIVER"),
		DBHost:           v.GetString("DB_HOST"),
		DBPort:           v.GetString("DB_PORT"),
		DBUser:           v.GetString("DB_USER"),
		DBPassword:       v.GetString("DB_PASSWORD"),
		DBName:           v.GetString("DB_NAME"),
		DBSslMode:        v.GetString("DB_SSLMODE"),
		DBSQLitePath:     v.GetString("DB_SQLITE_PATH"),
		TxMaxAttempts:    v.GetInt("TX_MAX_ATTEMPTS"),
		TxInitialBackoff: v.GetDuration("TX_INITIAL_BACKOFF"),
		TxMaxBackoff:     v.GetDuration("TX_MAX_BACKOFF"),
		TxTimeout:        v.GetDuration("TX_TIMEOUT"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		LogFormat:        v.GetString("LOG_FORMAT"),
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	switch c.DBDriver {
	case database.DriverPostgres, database.DriverSQLite:
	default:
		return errors.Newf("DB_DRIVER must be %q or %q, got %q", database.DriverPostgres, database.DriverSQLite, c.DBDriver)
	}
	if c.HTTPPort == "" {
		return errors.New("HTTP_PORT is required")
	}
	if c.TxMaxAttempts < 1 {
		return errors.Newf("TX_MAX_ATTEMPTS must be positive, got %d", c.TxMaxAttempts)
	}
	return nil
}

// DSN renders the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// Database returns the storage settings.
func (c Config) Database() database.Config {
	return database.Config{
		Driver:     c.DBDriver,
		DSN:        c.DSN(),
		SQLitePath: c.DBSQLitePath,
	}
}

// Retry returns the write conflict policy of the coordinator.
func (c Config) Retry() retry.Config {
	return retry.Config{
		MaxAttempts:    c.TxMaxAttempts,
		InitialBackoff: c.TxInitialBackoff,
		MaxBackoff:     c.TxMaxBackoff,
		Timeout:        c.TxTimeout,
	}
}
