package logging_test

import (
	"testing"

	"fieldservice/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{"json info", "info", logging.FormatJSON, false},
		{"console debug", "debug", logging.FormatConsole, false},
		{"default format", "warn", "", false},
		{"bad level", "loud", logging.FormatJSON, true},
		{"bad format", "info", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := logging.New(tt.level, tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, logger)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestComponent(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	logging.Component(zap.New(core).Sugar(), "coordinator").Infow("started")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "coordinator", logs.All()[0].ContextMap()[logging.FieldComponent])
	assert.NotPanics(t, func() { logging.Component(nil, "x").Info("nop") })
}
