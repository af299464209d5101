package service

import (
	"errors"
	"fmt"
)

// Sentinel errors the handlers map onto HTTP status codes.
var (
	// ErrValidation maps to 400.
	ErrValidation = errors.New("validation failed")
	// ErrForbidden maps to 403: the record exists but belongs to someone
	// else, or the caller lacks the required role.
	ErrForbidden = errors.New("not authorized")
	// ErrNotFound maps to 404.
	ErrNotFound = errors.New("not found")
)

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
