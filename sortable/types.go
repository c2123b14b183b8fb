package sortable

import "math"

// Int is a sortable wrapper type for the built-in int type.
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

var _ Sortable[Int] = (*Int)(nil)

func (i Int) Equals(other Int) bool {
	return i == other
}

func (i Int) LessThan(other Int) bool {
	return i < other
}

// Float is a sortable wrapper for float64. NaN sorts before every other
// value, so that sorting a slice containing NaN remains a total order.
type Float float64

var _ Sortable[Float] = (*Float)(nil)

func (f Float) Equals(other Float) bool {
	return f == other || (f.isNaN() && other.isNaN())
}

func (f Float) LessThan(other Float) bool {
	if f.isNaN() {
		return !other.isNaN()
	}

	return f < other
}

func (f Float) isNaN() bool {
	return math.IsNaN(float64(f))
}

type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return s == other
}

func (s String) LessThan(other String) bool {
	return s < other
}
