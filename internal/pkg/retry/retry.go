// Package retry runs transactional operations under the write conflict retry
// policy: exponential backoff, a bounded number of attempts and an overall
// time budget.
package retry

import (
	"context"
	"errors"
	"time"

	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/logging"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Config holds the retry policy settings.
type Config struct {
	// MaxAttempts is the number of attempts including the first one.
	// Default: 5
	MaxAttempts int

	// InitialBackoff is the wait before the second attempt.
	// Default: 50ms
	InitialBackoff time.Duration

	// MaxBackoff caps the wait between attempts.
	// Default: 1s
	MaxBackoff time.Duration

	// Timeout bounds all attempts of one operation together. Zero disables it.
	// Default: 5s
	Timeout time.Duration
}

// DefaultConfig returns the default retry configuration.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    5,
		InitialBackoff: 50 * time.Millisecond,
		MaxBackoff:     time.Second,
		Timeout:        5 * time.Second,
	}
}

// Policy retries operations that fail with a write conflict.
type Policy struct {
	config Config
	logger *zap.SugaredLogger
}

// NewPolicy creates a policy. Non-positive settings fall back to DefaultConfig.
func NewPolicy(config Config, logger *zap.SugaredLogger) *Policy {
	defaults := DefaultConfig()
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = defaults.MaxAttempts
	}
	if config.InitialBackoff <= 0 {
		config.InitialBackoff = defaults.InitialBackoff
	}
	if config.MaxBackoff < config.InitialBackoff {
		config.MaxBackoff = max(defaults.MaxBackoff, config.InitialBackoff)
	}
	if config.Timeout < 0 {
		config.Timeout = 0
	}

	return &Policy{
		config: config,
		logger: logging.Component(logger, "retry"),
	}
}

// Do runs fn until it succeeds, fails with anything but a write conflict, or
// the policy gives up.
//
// Outcomes:
//   - nil when an attempt succeeded
//   - the attempt's own error for validation, not found, conflict and internal failures
//   - *errs.TransactionFailureError when every attempt hit a write conflict
//   - *errs.TransactionTimeoutError when the time budget or the caller's deadline ran out
func (p *Policy) Do(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	if p.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.Timeout)
		defer cancel()
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = p.config.InitialBackoff
	expo.MaxInterval = p.config.MaxBackoff
	expo.MaxElapsedTime = 0
	policy := backoff.WithContext(
		backoff.WithMaxRetries(expo, uint64(p.config.MaxAttempts-1)), //nolint:gosec // MaxAttempts is positive
		ctx,
	)

	attempts := 0
	attempt := func() error {
		attempts++
		err := fn(ctx)
		switch {
		case err == nil:
			return nil
		case isDeadline(ctx, err):
			return backoff.Permanent(err)
		case errs.IsWriteConflict(err):
			return err
		default:
			return backoff.Permanent(err)
		}
	}

	notify := func(err error, wait time.Duration) {
		p.logger.Warnw("write conflict, retrying",
			logging.FieldOperation, operation,
			logging.FieldAttempt, attempts,
			"backoff", wait,
			logging.FieldError, err,
		)
	}

	err := backoff.RetryNotify(attempt, policy, notify)
	switch {
	case err == nil:
		return nil
	case isDeadline(ctx, err):
		return errs.NewTransactionTimeoutError(operation, err)
	case errs.IsWriteConflict(err):
		p.logger.Errorw("giving up after write conflicts",
			logging.FieldOperation, operation,
			logging.FieldAttempt, attempts,
			logging.FieldError, err,
		)
		return errs.NewTransactionFailureError(operation, attempts, err)
	default:
		return err
	}
}

func isDeadline(ctx context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)
}
