package query

import (
	"slices"
	"testing"

	"github.com/amp-labs/amp-query/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustSlice materializes s, failing the test on error.
func mustSlice[T any](t *testing.T, s Sequence[T]) []T {
	t.Helper()

	out, err := s.ToSlice()
	require.NoError(t, err)

	return out
}

func TestFromCopiesInput(t *testing.T) {
	t.Parallel()

	src := []int{1, 2, 3}
	seq := From(src)
	src[0] = 99

	assert.Equal(t, []int{1, 2, 3}, mustSlice(t, seq))
}

func TestToSliceIsASnapshot(t *testing.T) {
	t.Parallel()

	seq := Of(1, 2, 3)

	out := mustSlice(t, seq)
	out[0] = 99

	assert.Equal(t, []int{1, 2, 3}, mustSlice(t, seq))
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mustSlice(t, Empty[string]()))
	assert.NotNil(t, mustSlice(t, Empty[string]()))
	assert.Empty(t, mustSlice(t, Sequence[int]{}))
	assert.Equal(t, []string{"x", "x", "x"}, mustSlice(t, Repeat("x", 3)))
	assert.Equal(t, []int{5, 6, 7, 8}, mustSlice(t, Range(5, 4)))
	assert.Equal(t, []int{1, 2}, mustSlice(t, FromSeq(slices.Values([]int{1, 2}))))

	require.ErrorIs(t, Repeat("x", -1).Err(), errors.ErrInvalidArgument)
	require.ErrorIs(t, Range(0, -1).Err(), errors.ErrInvalidArgument)
	require.ErrorIs(t, FromSeq[int](nil).Err(), errors.ErrInvalidArgument)
}

func TestIterationIsRestartable(t *testing.T) {
	t.Parallel()

	seq := Of("a", "b", "c")
	values := seq.Values()

	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(values))
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(values))
	assert.Equal(t, []string{"c", "b", "a"}, slices.Collect(seq.Backward()))

	var positions []int
	for i := range seq.Indexed() {
		positions = append(positions, i)
	}

	assert.Equal(t, []int{0, 1, 2}, positions)

	// Early exit must not panic.
	for v := range seq.Values() {
		assert.Equal(t, "a", v)

		break
	}
}

func TestToArrayAndAppendTo(t *testing.T) {
	t.Parallel()

	arr, err := Of(1, 2, 3).ToArray()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, arr)
	assert.Equal(t, len(arr), cap(arr))

	buf := make([]int, 0, 8)
	buf = append(buf, 0)

	out, err := Of(1, 2).AppendTo(buf)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, out)
}

func TestErrorsAreSticky(t *testing.T) {
	t.Parallel()

	calls := 0
	seq := Of(1, 2, 3).
		Where(nil).
		Where(func(int) bool { calls++; return true }).
		Take(2).
		Reverse()

	require.Error(t, seq.Err())
	assert.Zero(t, calls)
	assert.Empty(t, slices.Collect(seq.Values()))

	_, err := seq.Count()
	require.ErrorIs(t, err, errors.ErrInvalidArgument)

	var opErr *OperatorError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "Where", opErr.Op)
	assert.Contains(t, err.Error(), "query: Where: invalid argument")

	_, err = seq.ToSlice()
	require.ErrorIs(t, err, errors.ErrInvalidArgument)

	buf, err := seq.AppendTo([]int{7})
	require.Error(t, err)
	assert.Equal(t, []int{7}, buf)

	assert.Contains(t, seq.String(), "error")
}

func TestFirstErrorWins(t *testing.T) {
	t.Parallel()

	broken := Of(1).Take(-1)
	other := Of(2).Skip(-1)

	var opErr *OperatorError
	require.ErrorAs(t, broken.Concat(other).Err(), &opErr)
	assert.Equal(t, "Take", opErr.Op)

	require.ErrorAs(t, Of(1).Concat(other).Err(), &opErr)
	assert.Equal(t, "Skip", opErr.Op)
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Sequence[1 2 3]", Of(1, 2, 3).String())
	assert.Equal(t, "Sequence[]", Empty[int]().String())
}
