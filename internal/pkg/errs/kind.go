package errs

import "errors"

// Kind classifies an error for callers outside the core.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindTransactionFailure
	KindTransactionTimeout
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindNotFound:
		return "NotFound"
	case KindConflict:
		return "Conflict"
	case KindTransactionFailure:
		return "TransactionFailure"
	case KindTransactionTimeout:
		return "TransactionTimeout"
	default:
		return "Internal"
	}
}

// KindOf classifies err. Transaction outcomes are checked first because they
// carry the conflict that caused them.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrTransactionTimeout):
		return KindTransactionTimeout
	case errors.Is(err, ErrTransactionFailure):
		return KindTransactionFailure
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrWriteConflict):
		return KindConflict
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	default:
		return KindInternal
	}
}
