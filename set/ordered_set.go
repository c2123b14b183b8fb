// Package set provides an insertion-ordered hash set for collectable
// elements. Uniqueness is determined by the HashFunc the set was created with,
// and elements whose hashes collide are told apart with Equals.
package set

import (
	"iter"

	"github.com/amp-labs/amp-query/collectable"
	"github.com/amp-labs/amp-query/hashing"
)

// An OrderedSet is a collection of unique elements that remembers the order in
// which elements were first added. Re-adding an element that is already present
// does not move it.
type OrderedSet[T collectable.Collectable[T]] interface {
	// AddAll adds multiple elements to the set in order. Returns an error if
	// hashing any element fails; elements before the failing one stay added.
	AddAll(elements ...T) error

	// Add adds a single element to the end of the set if it is not already
	// present. Reports whether the element was added.
	Add(element T) (bool, error)

	// Contains checks if an element exists in the set.
	Contains(element T) (bool, error)

	// Clear removes all elements from the set.
	Clear()

	// Size returns the number of elements in the set.
	Size() int

	// Entries returns all elements in insertion order. The returned slice is
	// owned by the caller.
	Entries() []T

	// Seq iterates over the elements in insertion order, with their position.
	Seq() iter.Seq2[int, T]

	// Union returns a new set containing the elements of this set followed by
	// the elements of other that are not already present.
	Union(other OrderedSet[T]) (OrderedSet[T], error)

	// Intersection returns a new set containing, in this set's order, the
	// elements also present in other.
	Intersection(other OrderedSet[T]) (OrderedSet[T], error)

	// HashFunction returns the hash function used by the set.
	HashFunction() hashing.HashFunc
}

type orderedSetImpl[T collectable.Collectable[T]] struct {
	hash  hashing.HashFunc
	order []T

	// buckets maps a hash value to the positions in order sharing it.
	buckets map[string][]int
}

// NewOrderedSet creates a new OrderedSet with the provided hash function.
func NewOrderedSet[T collectable.Collectable[T]](hash hashing.HashFunc) OrderedSet[T] {
	return &orderedSetImpl[T]{
		hash:    hash,
		buckets: make(map[string][]int),
	}
}

func (s *orderedSetImpl[T]) AddAll(elements ...T) error {
	for _, elem := range elements {
		if _, err := s.Add(elem); err != nil {
			return err
		}
	}

	return nil
}

func (s *orderedSetImpl[T]) Add(element T) (bool, error) {
	hashVal, found, err := s.lookup(element)
	if err != nil || found {
		return false, err
	}

	s.buckets[hashVal] = append(s.buckets[hashVal], len(s.order))
	s.order = append(s.order, element)

	return true, nil
}

func (s *orderedSetImpl[T]) Contains(element T) (bool, error) {
	_, found, err := s.lookup(element)

	return found, err
}

// lookup hashes element and reports whether an equal element is present.
func (s *orderedSetImpl[T]) lookup(element T) (string, bool, error) {
	hashVal, err := s.hash(element)
	if err != nil {
		return "", false, err
	}

	for _, pos := range s.buckets[hashVal] {
		if s.order[pos].Equals(element) {
			return hashVal, true, nil
		}
	}

	return hashVal, false, nil
}

func (s *orderedSetImpl[T]) Clear() {
	s.order = nil
	s.buckets = make(map[string][]int)
}

func (s *orderedSetImpl[T]) Size() int {
	return len(s.order)
}

func (s *orderedSetImpl[T]) Entries() []T {
	items := make([]T, len(s.order))
	copy(items, s.order)

	return items
}

func (s *orderedSetImpl[T]) Seq() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range s.order {
			if !yield(i, item) {
				return
			}
		}
	}
}

func (s *orderedSetImpl[T]) Union(other OrderedSet[T]) (OrderedSet[T], error) {
	ns := NewOrderedSet[T](s.hash)

	if err := ns.AddAll(s.order...); err != nil {
		return nil, err
	}

	if err := ns.AddAll(other.Entries()...); err != nil {
		return nil, err
	}

	return ns, nil
}

func (s *orderedSetImpl[T]) Intersection(other OrderedSet[T]) (OrderedSet[T], error) {
	ns := NewOrderedSet[T](s.hash)

	for _, item := range s.order {
		contains, err := other.Contains(item)
		if err != nil {
			return nil, err
		}

		if contains {
			if _, err := ns.Add(item); err != nil {
				return nil, err
			}
		}
	}

	return ns, nil
}

func (s *orderedSetImpl[T]) HashFunction() hashing.HashFunc {
	return s.hash
}
