package cmd_test

import (
	"testing"
	"time"

	"fieldservice/cmd"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := cmd.LoadConfig(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, "postgres", config.DBDriver)
	assert.Equal(t, 5, config.TxMaxAttempts)
	assert.Equal(t, 50*time.Millisecond, config.TxInitialBackoff)
	assert.Equal(t, time.Second, config.TxMaxBackoff)
	assert.Equal(t, 5*time.Second, config.TxTimeout)
	assert.Equal(t, "info", config.LogLevel)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/test.db")
	t.Setenv("TX_MAX_ATTEMPTS", "3")
	t.Setenv("TX_TIMEOUT", "250ms")

	config, err := cmd.LoadConfig(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, "sqlite", config.DBDriver)
	assert.Equal(t, "/tmp/test.db", config.Database().SQLitePath)
	assert.Equal(t, 3, config.Retry().MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, config.Retry().Timeout)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown driver", "DB_DRIVER", "mysql"},
		{"no attempts", "TX_MAX_ATTEMPTS", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			_, err := cmd.LoadConfig(viper.New())
			assert.ErrorContains(t, err, tc.key)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	config := cmd.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "svc",
		DBPassword: "secret",
		DBName:     "fieldservice",
		DBSslMode:  "disable",
	}

	assert.Equal(t,
		"host=db port=5432 user=svc password=secret dbname=fieldservice sslmode=disable",
		config.DSN(),
	)
}
