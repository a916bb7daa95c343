package errs

import (
	"errors"
	"fmt"
)

var (
	ErrConflict      = errors.New("conflict")
	ErrWriteConflict = errors.New("write conflict")
)

// ConflictError reports a request that contradicts the current state, for
// example a job that is already placed in another route. It is never retried.
type ConflictError struct {
	Subject string
	Cause   error
}

func NewConflictError(subject string) *ConflictError {
	return &ConflictError{Subject: subject}
}

func NewConflictErrorWithCause(subject string, cause error) *ConflictError {
	return &ConflictError{
		Subject: subject,
		Cause:   cause,
	}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrConflict, e.Subject, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.Subject)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// WriteConflictError reports an optimistic concurrency failure detected while
// writing: a stale version, a serialization failure or a lost race on a unique
// slot. Transactional operations retry it.
type WriteConflictError struct {
	Entity string
	Cause  error
}

func NewWriteConflictError(entity string) *WriteConflictError {
	return &WriteConflictError{Entity: entity}
}

func NewWriteConflictErrorWithCause(entity string, cause error) *WriteConflictError {
	return &WriteConflictError{
		Entity: entity,
		Cause:  cause,
	}
}

func (e *WriteConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrWriteConflict, e.Entity, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrWriteConflict, e.Entity)
}

func (e *WriteConflictError) Unwrap() error {
	return ErrWriteConflict
}

// IsWriteConflict reports whether err is, or wraps, a write conflict.
func IsWriteConflict(err error) bool {
	return errors.Is(err, ErrWriteConflict)
}
