package errors

import (
	"context"
	"errors"
)

// IsValidationError reports whether err was raised while translating client
// input, before any backend call was made.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var tErr *Error
	if As(err, &tErr) {
		switch tErr.Code() {
		case ERR_MALFORMED_HEX,
			ERR_MALFORMED_OUTPOINT,
			ERR_INVALID_ADDRESS,
			ERR_INVALID_ARGUMENT:
			return true
		}
	}

	return false
}

// IsNotFoundError reports whether err, or any error it wraps, carries ERR_NOT_FOUND.
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	return Is(err, ErrNotFound)
}

// IsUnavailableError reports whether the backend could not be reached at all.
func IsUnavailableError(err error) bool {
	if err == nil {
		return false
	}

	return Is(err, ErrServiceUnavailable) || Is(err, ErrServiceNotStarted)
}

// IsContextError determines if an error is related to context cancellation or deadline.
func IsContextError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	return Is(err, ErrContextCanceled) || Is(err, ErrContext)
}
