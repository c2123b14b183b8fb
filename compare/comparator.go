package compare

import (
	"cmp"
	"sync"

	"facette.io/natsort"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator reports the relative order of a and b: negative when a sorts
// first, positive when b sorts first, zero when they are equivalent.
// It has the same shape as the functions accepted by slices.SortStableFunc.
type Comparator[T any] func(a, b T) int

// Ordered returns the natural Comparator for a cmp.Ordered type.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse returns a Comparator that inverts c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// By lifts a Comparator over keys into a Comparator over elements, comparing
// the keys extracted by key.
func By[T any, K any](key func(T) K, c Comparator[K]) Comparator[T] {
	return func(a, b T) int {
		return c(key(a), key(b))
	}
}

// Then chains comparators: later ones only break ties left by earlier ones.
func Then[T any](comparators ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		for _, c := range comparators {
			if r := c(a, b); r != 0 {
				return r
			}
		}

		return 0
	}
}

// Natural orders strings using natural sort order, where digit runs are
// compared numerically ("file2" sorts before "file10").
func Natural(a, b string) int {
	switch {
	case a == b:
		return 0
	case natsort.Compare(a, b):
		return -1
	case natsort.Compare(b, a):
		return 1
	default:
		return 0
	}
}

// Collated returns a Comparator that orders strings according to the
// collation rules of the given language (for example, accented letters
// sort next to their base letter). Options are passed to collate.New.
//
// The returned Comparator is safe for concurrent use.
func Collated(tag language.Tag, opts ...collate.Option) Comparator[string] {
	var mut sync.Mutex

	collator := collate.New(tag, opts...)

	return func(a, b string) int {
		mut.Lock()
		defer mut.Unlock()

		return collator.CompareString(a, b)
	}
}
