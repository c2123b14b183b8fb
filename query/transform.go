package query

import (
	"slices"

	"github.com/amp-labs/amp-query/assert"
	"github.com/amp-labs/amp-query/errors"
	"github.com/amp-labs/amp-query/tuple"
)

// Where keeps the elements satisfying p, in order.
func (s Sequence[T]) Where(p Predicate[T]) Sequence[T] {
	if s.err != nil {
		return s
	}

	if p == nil {
		return failed[T](invalidArg("Where", "nil predicate"))
	}

	out := make([]T, 0, len(s.items))

	for _, item := range s.items {
		if p(item) {
			out = append(out, item)
		}
	}

	return Sequence[T]{items: out}
}

// Take keeps the first n elements. An n larger than the sequence keeps
// everything.
func (s Sequence[T]) Take(n int) Sequence[T] {
	return s.window("Take", n, func(items []T, n int) []T { return items[:n] })
}

// TakeEnd keeps the last n elements.
func (s Sequence[T]) TakeEnd(n int) Sequence[T] {
	return s.window("TakeEnd", n, func(items []T, n int) []T { return items[len(items)-n:] })
}

// Skip drops the first n elements.
func (s Sequence[T]) Skip(n int) Sequence[T] {
	return s.window("Skip", n, func(items []T, n int) []T { return items[n:] })
}

// SkipEnd drops the last n elements.
func (s Sequence[T]) SkipEnd(n int) Sequence[T] {
	return s.window("SkipEnd", n, func(items []T, n int) []T { return items[:len(items)-n] })
}

// window validates n, clamps it to the sequence length and copies the
// sub-slice chosen by cut.
func (s Sequence[T]) window(op string, n int, cut func(items []T, n int) []T) Sequence[T] {
	if s.err != nil {
		return s
	}

	if n < 0 {
		return failed[T](newOpError(op, errors.ErrInvalidArgument, "negative count %d", n))
	}

	return Sequence[T]{items: slices.Clone(cut(s.items, min(n, len(s.items))))}
}

// TakeWhile keeps the leading elements satisfying p, stopping at the first
// that does not.
func (s Sequence[T]) TakeWhile(p Predicate[T]) Sequence[T] {
	if s.err != nil {
		return s
	}

	if p == nil {
		return failed[T](invalidArg("TakeWhile", "nil predicate"))
	}

	end := s.indexOf(func(item T) bool { return !p(item) })
	if end < 0 {
		end = len(s.items)
	}

	return Sequence[T]{items: slices.Clone(s.items[:end])}
}

// SkipWhile drops the leading elements satisfying p and keeps everything
// from the first element that does not, whether or not later elements match.
func (s Sequence[T]) SkipWhile(p Predicate[T]) Sequence[T] {
	if s.err != nil {
		return s
	}

	if p == nil {
		return failed[T](invalidArg("SkipWhile", "nil predicate"))
	}

	start := s.indexOf(func(item T) bool { return !p(item) })
	if start < 0 {
		return Sequence[T]{}
	}

	return Sequence[T]{items: slices.Clone(s.items[start:])}
}

// Reverse returns the elements in reverse order.
func (s Sequence[T]) Reverse() Sequence[T] {
	if s.err != nil {
		return s
	}

	out := slices.Clone(s.items)
	slices.Reverse(out)

	return Sequence[T]{items: out}
}

// Concat appends the elements of other, keeping duplicates.
func (s Sequence[T]) Concat(other Sequence[T]) Sequence[T] {
	if err := firstErr(s.err, other.err); err != nil {
		return failed[T](err)
	}

	return Sequence[T]{items: slices.Concat(s.items, other.items)}
}

// Chunk splits the sequence into consecutive slices of size elements; the
// last may be shorter. Each chunk has its own backing array.
func Chunk[T any](s Sequence[T], size int) Sequence[[]T] {
	if s.err != nil {
		return failed[[]T](s.err)
	}

	if size < 1 {
		return failed[[]T](newOpError("Chunk", errors.ErrInvalidArgument, "chunk size %d", size))
	}

	out := make([][]T, 0, len(s.items)/size+1)
	for chunk := range slices.Chunk(s.items, size) {
		out = append(out, slices.Clone(chunk))
	}

	return Sequence[[]T]{items: out}
}

// Select projects each element through f.
func Select[T, R any](s Sequence[T], f Selector[T, R]) Sequence[R] {
	if s.err != nil {
		return failed[R](s.err)
	}

	if f == nil {
		return failed[R](invalidArg("Select", "nil selector"))
	}

	out := make([]R, len(s.items))
	for i, item := range s.items {
		out[i] = f(item)
	}

	return Sequence[R]{items: out}
}

// SelectIndexed projects each element through f, which also receives the
// element's position.
func SelectIndexed[T, R any](s Sequence[T], f func(index int, item T) R) Sequence[R] {
	if s.err != nil {
		return failed[R](s.err)
	}

	if f == nil {
		return failed[R](invalidArg("SelectIndexed", "nil selector"))
	}

	out := make([]R, len(s.items))
	for i, item := range s.items {
		out[i] = f(i, item)
	}

	return Sequence[R]{items: out}
}

// SelectMany projects each element to a slice and concatenates the results.
func SelectMany[T, R any](s Sequence[T], f Selector[T, []R]) Sequence[R] {
	if s.err != nil {
		return failed[R](s.err)
	}

	if f == nil {
		return failed[R](invalidArg("SelectMany", "nil selector"))
	}

	var out []R
	for _, item := range s.items {
		out = append(out, f(item)...)
	}

	return Sequence[R]{items: out}
}

// Flatten concatenates a sequence of sequences. The first error carried by
// any inner sequence wins.
func Flatten[T any](s Sequence[Sequence[T]]) Sequence[T] {
	if s.err != nil {
		return failed[T](s.err)
	}

	var out []T

	for _, inner := range s.items {
		if inner.err != nil {
			return failed[T](inner.err)
		}

		out = append(out, inner.items...)
	}

	return Sequence[T]{items: out}
}

// Zip pairs up elements by position. The result is as long as the shorter
// input.
func Zip[A, B any](a Sequence[A], b Sequence[B]) Sequence[tuple.Tuple2[A, B]] {
	if err := firstErr(a.err, b.err); err != nil {
		return failed[tuple.Tuple2[A, B]](err)
	}

	n := min(len(a.items), len(b.items))
	out := make([]tuple.Tuple2[A, B], n)

	for i := range n {
		out[i] = tuple.NewTuple2(a.items[i], b.items[i])
	}

	return Sequence[tuple.Tuple2[A, B]]{items: out}
}

// Cast converts every element to R with a type assertion. The first element
// that is not an R fails the whole sequence with ErrTypeMismatch.
func Cast[R, T any](s Sequence[T]) Sequence[R] {
	if s.err != nil {
		return failed[R](s.err)
	}

	out := make([]R, len(s.items))

	for i, item := range s.items {
		val, err := assert.Type[R](item)
		if err != nil {
			return failed[R](newOpError("Cast", err, "element %d", i))
		}

		out[i] = val
	}

	return Sequence[R]{items: out}
}

// OfType keeps the elements that are an R, converted to R.
func OfType[R, T any](s Sequence[T]) Sequence[R] {
	if s.err != nil {
		return failed[R](s.err)
	}

	var out []R

	for _, item := range s.items {
		if val, ok := any(item).(R); ok {
			out = append(out, val)
		}
	}

	return Sequence[R]{items: out}
}
