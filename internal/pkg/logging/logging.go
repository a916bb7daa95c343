// Package logging builds the zap logger shared by every component.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for structured logging. Use these constants instead of
// raw strings so that log queries stay stable.
const (
	FieldComponent  = "component"
	FieldOperation  = "operation"
	FieldAccountID  = "account_id"
	FieldJobID      = "job_id"
	FieldRouteID    = "route_id"
	FieldWeekday    = "weekday"
	FieldIndex      = "index"
	FieldAttempt    = "attempt"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatus     = "status"
	FieldError      = "error"
	FieldErrorKind  = "error_kind"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// New builds a sugared logger. level is any zap level name ("debug", "info",
// "warn", "error"); format is FormatJSON or FormatConsole.
func New(level, format string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var config zap.Config
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON, "":
		config = zap.NewProductionConfig()
	case FormatConsole:
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Component returns a child logger tagged with the component name.
func Component(logger *zap.SugaredLogger, name string) *zap.SugaredLogger {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return logger.With(FieldComponent, name)
}
