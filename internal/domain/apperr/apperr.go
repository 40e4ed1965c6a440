// Package apperr defines the error taxonomy shared by all services.
//
// Three kinds of failures cross service boundaries:
//   - validation errors: the caller supplied malformed or out-of-range input.
//   - not-found errors: well-formed input referencing data that does not exist.
//   - invariant errors: internal defensive checks that should never fire.
//
// Callers branch with errors.Is against the exported sentinels.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks caller mistakes. Never retried.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks references to absent entities or empty result sets.
	ErrNotFound = errors.New("not found")

	// ErrInvariant marks internal defensive checks. A bug signal, not
	// something callers should branch on.
	ErrInvariant = errors.New("invariant violation")
)

// Validation returns a formatted error wrapping ErrValidation.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound returns a formatted error wrapping ErrNotFound.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Invariant returns a formatted error wrapping ErrInvariant.
func Invariant(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}
