package query

import (
	"cmp"
	"slices"

	"github.com/amp-labs/amp-query/compare"
)

// Ordered is a sequence sorted by one or more keys. It behaves like its
// embedded Sequence, and additionally accepts secondary keys through
// ThenBy, ThenByDesc and ThenByFunc. Every sort is stable: elements that
// compare equal on all keys keep their source order.
type Ordered[T any] struct {
	Sequence[T]

	order compare.Comparator[T]
}

// OrderBy sorts ascending by key.
func OrderBy[T any, K cmp.Ordered](s Sequence[T], key Selector[T, K]) Ordered[T] {
	if key == nil {
		return orderFailed[T](s, "OrderBy", "nil key selector")
	}

	return sortBy(s, compare.By(key, compare.Ordered[K]()))
}

// OrderByDesc sorts descending by key.
func OrderByDesc[T any, K cmp.Ordered](s Sequence[T], key Selector[T, K]) Ordered[T] {
	if key == nil {
		return orderFailed[T](s, "OrderByDesc", "nil key selector")
	}

	return sortBy(s, compare.Reverse(compare.By(key, compare.Ordered[K]())))
}

// OrderByFunc sorts by an arbitrary comparator, such as compare.Natural or
// compare.Collated for human-facing strings.
func OrderByFunc[T any](s Sequence[T], c compare.Comparator[T]) Ordered[T] {
	if c == nil {
		return orderFailed[T](s, "OrderByFunc", "nil comparator")
	}

	return sortBy(s, c)
}

// ThenBy adds an ascending secondary key, consulted only between elements
// that tie on every earlier key.
func ThenBy[T any, K cmp.Ordered](o Ordered[T], key Selector[T, K]) Ordered[T] {
	if key == nil {
		return orderFailed[T](o.Sequence, "ThenBy", "nil key selector")
	}

	return o.ThenByFunc(compare.By(key, compare.Ordered[K]()))
}

// ThenByDesc adds a descending secondary key.
func ThenByDesc[T any, K cmp.Ordered](o Ordered[T], key Selector[T, K]) Ordered[T] {
	if key == nil {
		return orderFailed[T](o.Sequence, "ThenByDesc", "nil key selector")
	}

	return o.ThenByFunc(compare.Reverse(compare.By(key, compare.Ordered[K]())))
}

// ThenByFunc adds a secondary comparator.
func (o Ordered[T]) ThenByFunc(c compare.Comparator[T]) Ordered[T] {
	if o.err != nil {
		return o
	}

	if c == nil {
		return orderFailed[T](o.Sequence, "ThenByFunc", "nil comparator")
	}

	chain := c
	if o.order != nil {
		chain = compare.Then(o.order, c)
	}

	// The receiver is already sorted by the earlier keys, so a stable sort
	// by the full chain only reorders elements within tied runs.
	return sortBy(o.Sequence, chain)
}

func sortBy[T any](s Sequence[T], c compare.Comparator[T]) Ordered[T] {
	if s.err != nil {
		return Ordered[T]{Sequence: s}
	}

	items := slices.Clone(s.items)
	slices.SortStableFunc(items, c)

	return Ordered[T]{Sequence: Sequence[T]{items: items}, order: c}
}

func orderFailed[T any](s Sequence[T], op, what string) Ordered[T] {
	if s.err != nil {
		return Ordered[T]{Sequence: s}
	}

	return Ordered[T]{Sequence: failed[T](invalidArg(op, what))}
}
