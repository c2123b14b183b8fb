package query

import (
	"cmp"

	"github.com/amp-labs/amp-query/errors"
	"github.com/amp-labs/amp-query/zero"
)

// Number is the set of types Sum and Average accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum adds up the elements. The sum of an empty sequence is zero. Integer
// sums wrap on overflow like any Go arithmetic.
func Sum[T Number](s Sequence[T]) (T, error) {
	return SumOf(s, identity[T])
}

// SumOf adds up the values selected from each element.
func SumOf[T any, N Number](s Sequence[T], sel Selector[T, N]) (N, error) {
	if s.err != nil {
		return 0, s.err
	}

	if sel == nil {
		return 0, invalidArg("SumOf", "nil selector")
	}

	var total N
	for _, item := range s.items {
		total += sel(item)
	}

	return total, nil
}

// Average returns the arithmetic mean of the elements, computed in float64.
func Average[T Number](s Sequence[T]) (float64, error) {
	return averageOf("Average", s, identity[T])
}

// AverageOf returns the mean of the values selected from each element.
func AverageOf[T any, N Number](s Sequence[T], sel Selector[T, N]) (float64, error) {
	return averageOf("AverageOf", s, sel)
}

func averageOf[T any, N Number](op string, s Sequence[T], sel Selector[T, N]) (float64, error) {
	if s.err != nil {
		return 0, s.err
	}

	if sel == nil {
		return 0, invalidArg(op, "nil selector")
	}

	if len(s.items) == 0 {
		return 0, newOpError(op, errors.ErrEmptySequence, "")
	}

	var total float64
	for _, item := range s.items {
		total += float64(sel(item))
	}

	return total / float64(len(s.items)), nil
}

// Min returns the smallest element. Among equal elements the first wins.
func Min[T cmp.Ordered](s Sequence[T]) (T, error) {
	return extremeBy("Min", s, identity[T], -1)
}

// Max returns the largest element. Among equal elements the first wins.
func Max[T cmp.Ordered](s Sequence[T]) (T, error) {
	return extremeBy("Max", s, identity[T], 1)
}

// MinOf returns the smallest value selected from the elements.
func MinOf[T any, K cmp.Ordered](s Sequence[T], sel Selector[T, K]) (K, error) {
	if s.err == nil && sel == nil {
		return zero.Value[K](), invalidArg("MinOf", "nil selector")
	}

	return Min(Select(s, sel))
}

// MaxOf returns the largest value selected from the elements.
func MaxOf[T any, K cmp.Ordered](s Sequence[T], sel Selector[T, K]) (K, error) {
	if s.err == nil && sel == nil {
		return zero.Value[K](), invalidArg("MaxOf", "nil selector")
	}

	return Max(Select(s, sel))
}

// MinBy returns the element with the smallest key.
func MinBy[T any, K cmp.Ordered](s Sequence[T], key Selector[T, K]) (T, error) {
	return extremeBy("MinBy", s, key, -1)
}

// MaxBy returns the element with the largest key.
func MaxBy[T any, K cmp.Ordered](s Sequence[T], key Selector[T, K]) (T, error) {
	return extremeBy("MaxBy", s, key, 1)
}

// extremeBy returns the first element whose key compares to every other key
// with the sign of want. NaN keys sort below everything, as with cmp.Compare.
func extremeBy[T any, K cmp.Ordered](op string, s Sequence[T], key Selector[T, K], want int) (T, error) {
	if s.err != nil {
		return zero.Value[T](), s.err
	}

	if key == nil {
		return zero.Value[T](), invalidArg(op, "nil key selector")
	}

	if len(s.items) == 0 {
		return zero.Value[T](), newOpError(op, errors.ErrEmptySequence, "")
	}

	best, bestKey := s.items[0], key(s.items[0])

	for _, item := range s.items[1:] {
		if k := key(item); cmp.Compare(k, bestKey) == want {
			best, bestKey = item, k
		}
	}

	return best, nil
}

// Aggregate folds the elements into an accumulator, starting from seed.
func Aggregate[T, A any](s Sequence[T], seed A, fn func(acc A, item T) A) (A, error) {
	if s.err != nil {
		return seed, s.err
	}

	if fn == nil {
		return seed, invalidArg("Aggregate", "nil accumulator")
	}

	acc := seed
	for _, item := range s.items {
		acc = fn(acc, item)
	}

	return acc, nil
}
