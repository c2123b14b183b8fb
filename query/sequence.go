package query

import (
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/amp-query/errors"
	"github.com/amp-labs/amp-query/logger"
)

type (
	// Predicate reports whether an element qualifies. Predicates must be pure.
	Predicate[T any] func(item T) bool

	// Selector derives a value from an element: a projection, a grouping key
	// or a sort key. Selectors must be pure.
	Selector[T, R any] func(item T) R
)

// Sequence is an ordered, duplicate-permitting collection of elements.
//
// A Sequence owns its backing slice: constructors copy their input, and
// every operator that produces a sequence allocates a new one, so the
// receiver is never modified. The zero value is an empty sequence.
//
// Errors are sticky. An operator that cannot run (a nil predicate, a
// negative count) returns a Sequence carrying the error, every later
// operator passes it along untouched, and the first terminal operator
// (anything returning a value rather than a Sequence) reports it.
type Sequence[T any] struct {
	items []T
	err   error
}

// OperatorError reports which operator failed. Err wraps one of the
// sentinels in the errors package, so errors.Is works on it directly.
type OperatorError struct {
	Op  string
	Err error
}

func (e *OperatorError) Error() string {
	return "query: " + e.Op + ": " + e.Err.Error()
}

func (e *OperatorError) Unwrap() error {
	return e.Err
}

func opError(op string, err error) error {
	logger.Get().Debug("query operator failed", "operator", op, "error", err)

	return &OperatorError{Op: op, Err: err}
}

func newOpError(op string, kind error, format string, args ...any) error {
	if format == "" {
		return opError(op, kind)
	}

	return opError(op, fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)))
}

func invalidArg(op, what string) error {
	return newOpError(op, errors.ErrInvalidArgument, "%s", what)
}

func failed[T any](err error) Sequence[T] {
	return Sequence[T]{err: err}
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// Empty returns a sequence with no elements.
func Empty[T any]() Sequence[T] {
	return Sequence[T]{}
}

// From returns a sequence holding a copy of items. Later changes to items
// are not visible through the sequence.
func From[T any](items []T) Sequence[T] {
	return Sequence[T]{items: slices.Clone(items)}
}

// Of returns a sequence of the given elements.
func Of[T any](items ...T) Sequence[T] {
	return From(items)
}

// FromSeq drains seq into a new sequence.
func FromSeq[T any](seq iter.Seq[T]) Sequence[T] {
	if seq == nil {
		return failed[T](invalidArg("FromSeq", "nil iterator"))
	}

	return Sequence[T]{items: slices.Collect(seq)}
}

// Repeat returns a sequence holding value n times.
func Repeat[T any](value T, n int) Sequence[T] {
	if n < 0 {
		return failed[T](newOpError("Repeat", errors.ErrInvalidArgument, "negative count %d", n))
	}

	return Sequence[T]{items: slices.Repeat([]T{value}, n)}
}

// Range returns the n consecutive integers starting at start.
func Range(start, n int) Sequence[int] {
	if n < 0 {
		return failed[int](newOpError("Range", errors.ErrInvalidArgument, "negative count %d", n))
	}

	items := make([]int, n)
	for i := range items {
		items[i] = start + i
	}

	return Sequence[int]{items: items}
}

// Err returns the error carried by the sequence, if any.
func (s Sequence[T]) Err() error {
	return s.err
}

// Values iterates over the elements in order. The iterator can be ranged
// over any number of times. It yields nothing for a sequence carrying an
// error; check Err.
func (s Sequence[T]) Values() iter.Seq[T] {
	items := s.items

	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// Indexed iterates over the elements in order, with their positions.
func (s Sequence[T]) Indexed() iter.Seq2[int, T] {
	items := s.items

	return func(yield func(int, T) bool) {
		for i, item := range items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Backward iterates over the elements from last to first.
func (s Sequence[T]) Backward() iter.Seq[T] {
	items := s.items

	return func(yield func(T) bool) {
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(items[i]) {
				return
			}
		}
	}
}

// ToSlice returns a snapshot of the elements. The slice belongs to the
// caller and is never nil on success.
func (s Sequence[T]) ToSlice() ([]T, error) {
	if s.err != nil {
		return nil, s.err
	}

	out := make([]T, len(s.items))
	copy(out, s.items)

	return out, nil
}

// ToArray returns a fixed-size snapshot: its capacity equals its length,
// so appending to it never writes into memory shared with anything else.
func (s Sequence[T]) ToArray() ([]T, error) {
	out, err := s.ToSlice()
	if err != nil {
		return nil, err
	}

	return slices.Clip(out), nil
}

// AppendTo appends the elements to dst and returns the extended slice,
// letting callers supply their own buffer.
func (s Sequence[T]) AppendTo(dst []T) ([]T, error) {
	if s.err != nil {
		return dst, s.err
	}

	return append(dst, s.items...), nil
}

// String renders the elements like a slice, or the carried error.
func (s Sequence[T]) String() string {
	if s.err != nil {
		return fmt.Sprintf("Sequence(error: %v)", s.err)
	}

	return fmt.Sprintf("Sequence%v", s.items)
}
