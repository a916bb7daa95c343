// Package dberr translates driver errors into the error kinds of the core.
//
// Serialization failures, deadlocks, lock timeouts and lost races on unique
// keys become write conflicts, which the coordinator retries. Everything else
// is wrapped with the failing entity for context.
package dberr

import (
	"context"
	stderrors "errors"

	"fieldservice/internal/pkg/errs"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes treated as write conflicts.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgUniqueViolation      = "23505"
	pgLockNotAvailable     = "55P03"
)

// Translate maps err for entity. It returns nil for nil and leaves core
// errors (not found, validation) untouched.
func Translate(err error, entity string) error {
	if err == nil {
		return nil
	}
	if IsConflict(err) {
		return errs.NewWriteConflictErrorWithCause(entity, err)
	}
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		return err
	}
	if isCoreError(err) {
		return err
	}
	return errors.Wrapf(err, "%s storage", entity)
}

// IsConflict reports whether err is a retryable concurrency failure of either backend.
func IsConflict(err error) bool {
	if errs.IsWriteConflict(err) || stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected, pgUniqueViolation, pgLockNotAvailable:
			return true
		}
		return false
	}

	var sqliteErr sqlite3.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return true
		case sqlite3.ErrConstraint:
			return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
				sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
		}
	}
	return false
}

func isCoreError(err error) bool {
	return stderrors.Is(err, errs.ErrObjectNotFound) ||
		stderrors.Is(err, errs.ErrValueIsInvalid) ||
		stderrors.Is(err, errs.ErrValueIsRequired) ||
		stderrors.Is(err, errs.ErrValueIsOutOfRange) ||
		stderrors.Is(err, errs.ErrConflict)
}
