package query

import (
	"github.com/amp-labs/amp-query/compare"
)

// Any reports whether the sequence has at least one element.
func (s Sequence[T]) Any() (bool, error) {
	if s.err != nil {
		return false, s.err
	}

	return len(s.items) > 0, nil
}

// AnyMatch reports whether some element satisfies p. It stops at the first
// match.
func (s Sequence[T]) AnyMatch(p Predicate[T]) (bool, error) {
	if s.err != nil {
		return false, s.err
	}

	if p == nil {
		return false, invalidArg("AnyMatch", "nil predicate")
	}

	return s.indexOf(p) >= 0, nil
}

// All reports whether every element satisfies p. It is true for an empty
// sequence and stops at the first element that fails.
func (s Sequence[T]) All(p Predicate[T]) (bool, error) {
	if s.err != nil {
		return false, s.err
	}

	if p == nil {
		return false, invalidArg("All", "nil predicate")
	}

	for _, item := range s.items {
		if !p(item) {
			return false, nil
		}
	}

	return true, nil
}

// Count returns the number of elements.
func (s Sequence[T]) Count() (int, error) {
	if s.err != nil {
		return 0, s.err
	}

	return len(s.items), nil
}

// CountMatch returns the number of elements satisfying p.
func (s Sequence[T]) CountMatch(p Predicate[T]) (int, error) {
	if s.err != nil {
		return 0, s.err
	}

	if p == nil {
		return 0, invalidArg("CountMatch", "nil predicate")
	}

	n := 0

	for _, item := range s.items {
		if p(item) {
			n++
		}
	}

	return n, nil
}

// Contains reports whether item occurs in s, using ==.
func Contains[T comparable](s Sequence[T], item T) (bool, error) {
	if s.err != nil {
		return false, s.err
	}

	return s.indexOf(func(v T) bool { return v == item }) >= 0, nil
}

// ContainsBy reports whether some element has the same key as item.
func ContainsBy[T any, K comparable](s Sequence[T], item T, key Selector[T, K]) (bool, error) {
	if s.err != nil {
		return false, s.err
	}

	if key == nil {
		return false, invalidArg("ContainsBy", "nil key selector")
	}

	want := key(item)

	return s.indexOf(func(v T) bool { return key(v) == want }) >= 0, nil
}

// ContainsCollectable reports whether some element Equals item.
func ContainsCollectable[T compare.Comparable[T]](s Sequence[T], item T) (bool, error) {
	if s.err != nil {
		return false, s.err
	}

	return s.indexOf(func(v T) bool { return v.Equals(item) }) >= 0, nil
}

func (s Sequence[T]) indexOf(p Predicate[T]) int {
	for i, item := range s.items {
		if p(item) {
			return i
		}
	}

	return -1
}

func (s Sequence[T]) lastIndexOf(p Predicate[T]) int {
	for i := len(s.items) - 1; i >= 0; i-- {
		if p(s.items[i]) {
			return i
		}
	}

	return -1
}

func matchAll[T any](T) bool {
	return true
}
