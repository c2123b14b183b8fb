package query

import (
	"fmt"

	"github.com/amp-labs/amp-query/collectable"
	"github.com/amp-labs/amp-query/errors"
	"github.com/amp-labs/amp-query/hashing"
	"github.com/amp-labs/amp-query/set"
)

// ToMap indexes the elements by key. Two elements with the same key are an
// error; the error names every key that repeated.
func ToMap[T any, K comparable](s Sequence[T], key Selector[T, K]) (map[K]T, error) {
	if s.err != nil {
		return nil, s.err
	}

	if key == nil {
		return nil, invalidArg("ToMap", "nil key selector")
	}

	out := make(map[K]T, len(s.items))
	reported := make(map[K]struct{})

	var dups errors.Collection

	for _, item := range s.items {
		k := key(item)

		if _, dup := out[k]; dup {
			if _, seen := reported[k]; !seen {
				reported[k] = struct{}{}
				dups.Add(fmt.Errorf("%w: %v", errors.ErrDuplicateKey, k))
			}

			continue
		}

		out[k] = item
	}

	if dups.HasError() {
		return nil, opError("ToMap", dups.GetError())
	}

	return out, nil
}

// ToMapLast indexes the elements by key. When keys repeat, the last
// element wins.
func ToMapLast[T any, K comparable](s Sequence[T], key Selector[T, K]) (map[K]T, error) {
	if s.err != nil {
		return nil, s.err
	}

	if key == nil {
		return nil, invalidArg("ToMapLast", "nil key selector")
	}

	out := make(map[K]T, len(s.items))
	for _, item := range s.items {
		out[key(item)] = item
	}

	return out, nil
}

// Group is one bucket produced by GroupBy.
type Group[K comparable, T any] struct {
	Key   K
	Items Sequence[T]
}

// GroupBy buckets the elements by key. Groups appear in the order their key
// first occurs, and each group keeps its elements in source order.
func GroupBy[T any, K comparable](s Sequence[T], key Selector[T, K]) Sequence[Group[K, T]] {
	if s.err != nil {
		return failed[Group[K, T]](s.err)
	}

	if key == nil {
		return failed[Group[K, T]](invalidArg("GroupBy", "nil key selector"))
	}

	var groups []Group[K, T]

	index := make(map[K]int)

	for _, item := range s.items {
		k := key(item)

		pos, ok := index[k]
		if !ok {
			pos = len(groups)
			index[k] = pos
			groups = append(groups, Group[K, T]{Key: k})
		}

		groups[pos].Items.items = append(groups[pos].Items.items, item)
	}

	return Sequence[Group[K, T]]{items: groups}
}

// ToOrderedSet collects the distinct elements into an insertion-ordered set
// built on hash. A nil hash selects hashing.Xxh3.
func ToOrderedSet[T collectable.Collectable[T]](s Sequence[T], hash hashing.HashFunc) (set.OrderedSet[T], error) {
	if s.err != nil {
		return nil, s.err
	}

	if hash == nil {
		hash = hashing.Xxh3
	}

	out := set.NewOrderedSet[T](hash)
	if err := out.AddAll(s.items...); err != nil {
		return nil, opError("ToOrderedSet", err)
	}

	return out, nil
}
