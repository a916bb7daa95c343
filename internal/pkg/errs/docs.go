// Package errs provides standardized error types for the field service application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside an allowed range
//   - ObjectNotFoundError: For when an object cannot be found in the caller's account
//   - ConflictError: For business conflicts such as a job already placed in another route
//   - WriteConflictError: For optimistic concurrency failures detected by storage
//   - TransactionFailureError and TransactionTimeoutError: For transactional operations
//     that exhausted their retries or their time budget
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// KindOf maps any (possibly wrapped or joined) error onto the small taxonomy
// exposed to API clients: Validation, NotFound, Conflict, TransactionFailure,
// TransactionTimeout and Internal.
package errs
