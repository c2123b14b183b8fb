// Package errors defines the failure kinds reported by query operators, plus
// a small accumulator for operations that can fail more than once.
package errors

import "errors"

var (
	// ErrInvalidArgument is returned when a required predicate, selector or
	// comparator is nil, or when a count argument is out of its domain.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptySequence is returned by operators that need at least one element.
	ErrEmptySequence = errors.New("sequence contains no elements")

	// ErrNoMatch is returned when a predicate-qualified lookup finds nothing.
	ErrNoMatch = errors.New("sequence contains no matching element")

	// ErrMultipleMatches is returned when a single-element lookup finds more than one element.
	ErrMultipleMatches = errors.New("sequence contains more than one matching element")

	// ErrIndexOutOfRange is returned when an index falls outside [0, count).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrTypeMismatch is returned when an element cannot be converted to the requested type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrDuplicateKey is returned when two elements map to the same key.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when an operation should report every failure it found rather
// than stopping at the first one.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
