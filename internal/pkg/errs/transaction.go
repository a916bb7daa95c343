package errs

import (
	"errors"
	"fmt"
)

var (
	ErrTransactionFailure = errors.New("transaction failed")
	ErrTransactionTimeout = errors.New("transaction timed out")
)

// TransactionFailureError is returned once a transactional operation gave up
// after repeated write conflicts.
type TransactionFailureError struct {
	Operation string
	Attempts  int
	Cause     error
}

func NewTransactionFailureError(operation string, attempts int, cause error) *TransactionFailureError {
	return &TransactionFailureError{
		Operation: operation,
		Attempts:  attempts,
		Cause:     cause,
	}
}

func (e *TransactionFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s after %d attempt(s) (cause: %v)",
			ErrTransactionFailure, e.Operation, e.Attempts, e.Cause)
	}
	return fmt.Sprintf("%s: %s after %d attempt(s)", ErrTransactionFailure, e.Operation, e.Attempts)
}

func (e *TransactionFailureError) Unwrap() error {
	return ErrTransactionFailure
}

// TransactionTimeoutError is returned when a transaction did not commit
// within its time budget.
type TransactionTimeoutError struct {
	Operation string
	Cause     error
}

func NewTransactionTimeoutError(operation string, cause error) *TransactionTimeoutError {
	return &TransactionTimeoutError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *TransactionTimeoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrTransactionTimeout, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrTransactionTimeout, e.Operation)
}

func (e *TransactionTimeoutError) Unwrap() error {
	return ErrTransactionTimeout
}
