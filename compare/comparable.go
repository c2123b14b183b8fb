// Package compare provides equality and ordering utilities used by the
// query operators: the Comparable equality interface, and Comparator
// functions for stable multi-key ordering.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}
