package query

import (
	"github.com/amp-labs/amp-query/collectable"
	"github.com/amp-labs/amp-query/hashing"
	"github.com/amp-labs/amp-query/set"
)

// Set operators come in three flavors that differ only in how elements are
// judged equal:
//
//   - the plain form requires a comparable element type and uses ==;
//   - the By form compares keys extracted by a selector;
//   - the Collectable form hashes elements with hashing.Xxh3 and settles
//     hash collisions with Equals.
//
// Except and Intersect filter the receiver element by element, so they keep
// its order and its duplicates. Union and the Distinct family drop repeats
// and keep first occurrences.

// Distinct drops repeated elements, keeping first occurrences in order.
func Distinct[T comparable](s Sequence[T]) Sequence[T] {
	return DistinctBy(s, identity[T])
}

// DistinctBy drops elements whose key was already seen.
func DistinctBy[T any, K comparable](s Sequence[T], key Selector[T, K]) Sequence[T] {
	if s.err != nil {
		return s
	}

	if key == nil {
		return failed[T](invalidArg("DistinctBy", "nil key selector"))
	}

	return Sequence[T]{items: appendUnseen(nil, make(map[K]struct{}, len(s.items)), s.items, key)}
}

// DistinctCollectable drops elements equal to an earlier one.
func DistinctCollectable[T collectable.Collectable[T]](s Sequence[T]) Sequence[T] {
	if s.err != nil {
		return s
	}

	seen, err := collect("DistinctCollectable", s.items)
	if err != nil {
		return failed[T](err)
	}

	return Sequence[T]{items: seen.Entries()}
}

// DistinctWhere keeps an element only when no element kept before it
// satisfies p. The predicate is evaluated against the kept elements, so it
// can express any "already covered" rule, for example
// Of(1, 2, 3, 4).DistinctWhere(isEven) keeps 1 and 2.
func (s Sequence[T]) DistinctWhere(p Predicate[T]) Sequence[T] {
	if s.err != nil {
		return s
	}

	if p == nil {
		return failed[T](invalidArg("DistinctWhere", "nil predicate"))
	}

	kept := Sequence[T]{}

	for _, item := range s.items {
		if kept.indexOf(p) < 0 {
			kept.items = append(kept.items, item)
		}
	}

	return kept
}

// Except keeps the elements of s that do not occur in other.
func Except[T comparable](s, other Sequence[T]) Sequence[T] {
	return ExceptBy(s, other, identity[T])
}

// ExceptBy keeps the elements of s whose key does not occur among the keys
// of other.
func ExceptBy[T any, K comparable](s, other Sequence[T], key Selector[T, K]) Sequence[T] {
	return filterByKeys("ExceptBy", s, other, key, false)
}

// ExceptCollectable keeps the elements of s not equal to any element of
// other.
func ExceptCollectable[T collectable.Collectable[T]](s, other Sequence[T]) Sequence[T] {
	return filterByMembership("ExceptCollectable", s, other, false)
}

// Intersect keeps the elements of s that also occur in other.
func Intersect[T comparable](s, other Sequence[T]) Sequence[T] {
	return IntersectBy(s, other, identity[T])
}

// IntersectBy keeps the elements of s whose key occurs among the keys of
// other.
func IntersectBy[T any, K comparable](s, other Sequence[T], key Selector[T, K]) Sequence[T] {
	return filterByKeys("IntersectBy", s, other, key, true)
}

// IntersectCollectable keeps the elements of s equal to some element of
// other.
func IntersectCollectable[T collectable.Collectable[T]](s, other Sequence[T]) Sequence[T] {
	return filterByMembership("IntersectCollectable", s, other, true)
}

// Union returns the distinct elements of s followed by the distinct
// elements of other not already present.
func Union[T comparable](s, other Sequence[T]) Sequence[T] {
	return UnionBy(s, other, identity[T])
}

// UnionBy is Union with equality decided by key.
func UnionBy[T any, K comparable](s, other Sequence[T], key Selector[T, K]) Sequence[T] {
	if err := firstErr(s.err, other.err); err != nil {
		return failed[T](err)
	}

	if key == nil {
		return failed[T](invalidArg("UnionBy", "nil key selector"))
	}

	seen := make(map[K]struct{}, len(s.items)+len(other.items))
	out := appendUnseen(nil, seen, s.items, key)

	return Sequence[T]{items: appendUnseen(out, seen, other.items, key)}
}

// UnionCollectable is Union with equality decided by hash and Equals.
func UnionCollectable[T collectable.Collectable[T]](s, other Sequence[T]) Sequence[T] {
	if err := firstErr(s.err, other.err); err != nil {
		return failed[T](err)
	}

	left, err := collect("UnionCollectable", s.items)
	if err != nil {
		return failed[T](err)
	}

	right, err := collect("UnionCollectable", other.items)
	if err != nil {
		return failed[T](err)
	}

	union, err := left.Union(right)
	if err != nil {
		return failed[T](opError("UnionCollectable", err))
	}

	return Sequence[T]{items: union.Entries()}
}

func identity[T any](item T) T {
	return item
}

// appendUnseen appends to dst each item whose key is not yet in seen,
// recording the key.
func appendUnseen[T any, K comparable](dst []T, seen map[K]struct{}, items []T, key Selector[T, K]) []T {
	for _, item := range items {
		k := key(item)
		if _, dup := seen[k]; dup {
			continue
		}

		seen[k] = struct{}{}
		dst = append(dst, item)
	}

	return dst
}

func filterByKeys[T any, K comparable](op string, s, other Sequence[T], key Selector[T, K], keep bool) Sequence[T] {
	if err := firstErr(s.err, other.err); err != nil {
		return failed[T](err)
	}

	if key == nil {
		return failed[T](invalidArg(op, "nil key selector"))
	}

	keys := make(map[K]struct{}, len(other.items))
	for _, item := range other.items {
		keys[key(item)] = struct{}{}
	}

	return s.Where(func(item T) bool {
		_, found := keys[key(item)]

		return found == keep
	})
}

func filterByMembership[T collectable.Collectable[T]](op string, s, other Sequence[T], keep bool) Sequence[T] {
	if err := firstErr(s.err, other.err); err != nil {
		return failed[T](err)
	}

	members, err := collect(op, other.items)
	if err != nil {
		return failed[T](err)
	}

	out := make([]T, 0, len(s.items))

	for _, item := range s.items {
		found, err := members.Contains(item)
		if err != nil {
			return failed[T](opError(op, err))
		}

		if found == keep {
			out = append(out, item)
		}
	}

	return Sequence[T]{items: out}
}

func collect[T collectable.Collectable[T]](op string, items []T) (set.OrderedSet[T], error) {
	members := set.NewOrderedSet[T](hashing.Xxh3)
	if err := members.AddAll(items...); err != nil {
		return nil, opError(op, err)
	}

	return members, nil
}
