// Package sortable provides the Sortable interface and wrapper types for
// primitives that implement it, so that domain types with their own ordering
// rules can be used as sort keys alongside builtin ones.
//
// A custom type only needs Equals and LessThan:
//
//	type Version struct{ Major, Minor int }
//
//	func (v Version) Equals(o Version) bool   { return v == o }
//	func (v Version) LessThan(o Version) bool {
//	    if v.Major != o.Major {
//	        return v.Major < o.Major
//	    }
//	    return v.Minor < o.Minor
//	}
//
// and can then be ordered with
//
//	query.OrderByFunc(releases, compare.By(Release.Version, sortable.Compare[Version]))
package sortable

import (
	"github.com/amp-labs/amp-query/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare adapts a Sortable type to the three-way compare.Comparator shape.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}
