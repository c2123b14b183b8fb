// Package collectable defines the contract for elements that can be
// deduplicated without being Go-comparable.
package collectable

import (
	"github.com/amp-labs/amp-query/compare"
	"github.com/amp-labs/amp-query/hashing"
)

// Collectable is an interface that combines the Hashable and
// Comparable interfaces. This is useful for objects that need
// to be stored in a Set, where uniqueness is determined by
// the hashing value, and collisions are resolved by comparing
// the objects.
//
// Struct types holding slices or maps cannot be used with ==, so the
// query package's set operators fall back to this interface for them.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}
