package query

import (
	"github.com/amp-labs/amp-query/errors"
	"github.com/amp-labs/amp-query/optional"
	"github.com/amp-labs/amp-query/zero"
)

// Get returns the element at index.
func (s Sequence[T]) Get(index int) (T, error) {
	if s.err != nil {
		return zero.Value[T](), s.err
	}

	if index < 0 || index >= len(s.items) {
		return zero.Value[T](), newOpError("Get", errors.ErrIndexOutOfRange,
			"index %d, count %d", index, len(s.items))
	}

	return s.items[index], nil
}

// ElementAtOrDefault returns the element at index, or None when index is
// out of range.
func (s Sequence[T]) ElementAtOrDefault(index int) (optional.Value[T], error) {
	if s.err != nil {
		return optional.None[T](), s.err
	}

	if index < 0 || index >= len(s.items) {
		return optional.None[T](), nil
	}

	return optional.Some(s.items[index]), nil
}

// First returns the first element.
func (s Sequence[T]) First() (T, error) {
	return s.pick("First", matchAll[T], false, errors.ErrEmptySequence)
}

// FirstMatch returns the first element satisfying p.
func (s Sequence[T]) FirstMatch(p Predicate[T]) (T, error) {
	return s.pick("FirstMatch", p, false, errors.ErrNoMatch)
}

// FirstOrDefault returns the first element, or None for an empty sequence.
func (s Sequence[T]) FirstOrDefault() (optional.Value[T], error) {
	return s.pickOptional("FirstOrDefault", matchAll[T], false)
}

// FirstMatchOrDefault returns the first element satisfying p, or None.
func (s Sequence[T]) FirstMatchOrDefault(p Predicate[T]) (optional.Value[T], error) {
	return s.pickOptional("FirstMatchOrDefault", p, false)
}

// Last returns the last element.
func (s Sequence[T]) Last() (T, error) {
	return s.pick("Last", matchAll[T], true, errors.ErrEmptySequence)
}

// LastMatch returns the last element satisfying p. The sequence is scanned
// from the end.
func (s Sequence[T]) LastMatch(p Predicate[T]) (T, error) {
	return s.pick("LastMatch", p, true, errors.ErrNoMatch)
}

// LastOrDefault returns the last element, or None for an empty sequence.
func (s Sequence[T]) LastOrDefault() (optional.Value[T], error) {
	return s.pickOptional("LastOrDefault", matchAll[T], true)
}

// LastMatchOrDefault returns the last element satisfying p, or None.
func (s Sequence[T]) LastMatchOrDefault(p Predicate[T]) (optional.Value[T], error) {
	return s.pickOptional("LastMatchOrDefault", p, true)
}

// Single returns the only element. It fails when the sequence is empty or
// holds more than one element.
func (s Sequence[T]) Single() (T, error) {
	return s.single("Single", matchAll[T], errors.ErrEmptySequence)
}

// SingleMatch returns the only element satisfying p. It fails when nothing
// or more than one element matches.
func (s Sequence[T]) SingleMatch(p Predicate[T]) (T, error) {
	return s.single("SingleMatch", p, errors.ErrNoMatch)
}

// SingleOrDefault returns the only element, or None for an empty sequence.
// More than one element is still an error.
func (s Sequence[T]) SingleOrDefault() (optional.Value[T], error) {
	return s.singleOptional("SingleOrDefault", matchAll[T])
}

// SingleMatchOrDefault returns the only element satisfying p, or None when
// nothing matches. More than one match is still an error.
func (s Sequence[T]) SingleMatchOrDefault(p Predicate[T]) (optional.Value[T], error) {
	return s.singleOptional("SingleMatchOrDefault", p)
}

func (s Sequence[T]) find(op string, p Predicate[T], fromEnd bool) (int, error) {
	if s.err != nil {
		return -1, s.err
	}

	if p == nil {
		return -1, invalidArg(op, "nil predicate")
	}

	if fromEnd {
		return s.lastIndexOf(p), nil
	}

	return s.indexOf(p), nil
}

func (s Sequence[T]) pick(op string, p Predicate[T], fromEnd bool, missing error) (T, error) {
	idx, err := s.find(op, p, fromEnd)
	if err != nil {
		return zero.Value[T](), err
	}

	if idx < 0 {
		return zero.Value[T](), newOpError(op, missing, "")
	}

	return s.items[idx], nil
}

func (s Sequence[T]) pickOptional(op string, p Predicate[T], fromEnd bool) (optional.Value[T], error) {
	idx, err := s.find(op, p, fromEnd)
	if err != nil || idx < 0 {
		return optional.None[T](), err
	}

	return optional.Some(s.items[idx]), nil
}

// singleIndex returns the position of the only element satisfying p, or -1
// when there is none. It stops scanning at the second match.
func (s Sequence[T]) singleIndex(op string, p Predicate[T]) (int, error) {
	idx, err := s.find(op, p, false)
	if err != nil || idx < 0 {
		return idx, err
	}

	for _, item := range s.items[idx+1:] {
		if p(item) {
			return -1, newOpError(op, errors.ErrMultipleMatches, "")
		}
	}

	return idx, nil
}

func (s Sequence[T]) single(op string, p Predicate[T], missing error) (T, error) {
	idx, err := s.singleIndex(op, p)
	if err != nil {
		return zero.Value[T](), err
	}

	if idx < 0 {
		return zero.Value[T](), newOpError(op, missing, "")
	}

	return s.items[idx], nil
}

func (s Sequence[T]) singleOptional(op string, p Predicate[T]) (optional.Value[T], error) {
	idx, err := s.singleIndex(op, p)
	if err != nil || idx < 0 {
		return optional.None[T](), err
	}

	return optional.Some(s.items[idx]), nil
}
