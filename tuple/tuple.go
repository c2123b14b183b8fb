//nolint:ireturn
package tuple

import "fmt"

func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{
		first:  first,
		second: second,
	}
}

// Tuple2 is a type that represents a pair of values.
type Tuple2[A any, B any] struct {
	first  A
	second B
}

func (t Tuple2[A, B]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple2[A, B]) Second() B { //nolint:ireturn
	return t.second
}

// Values returns both halves, for destructuring assignment.
func (t Tuple2[A, B]) Values() (A, B) { //nolint:ireturn
	return t.first, t.second
}

// Swap returns the pair with its halves exchanged.
func (t Tuple2[A, B]) Swap() Tuple2[B, A] {
	return NewTuple2(t.second, t.first)
}

func (t Tuple2[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.first, t.second)
}
