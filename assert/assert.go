// Package assert provides type assertion utilities with error handling.
package assert

import (
	"fmt"

	"github.com/amp-labs/amp-query/errors"
)

// Type asserts that the given value is of the expected type T.
// If the assertion fails, it returns an error wrapping errors.ErrTypeMismatch.
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return of, fmt.Errorf("%w: expected type %T, but received %T", errors.ErrTypeMismatch, of, val)
	}

	return of, nil
}

// Is reports whether val holds a value of type T.
func Is[T any](val any) bool {
	_, ok := val.(T)

	return ok
}
