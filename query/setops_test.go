package query

import (
	"hash"
	"strings"
	"testing"

	"github.com/amp-labs/amp-query/errors"
	"github.com/amp-labs/amp-query/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tag is not comparable with ==, and hashes only its first letter so that
// different tags collide and have to be told apart by Equals.
type tag struct {
	name    string
	aliases []string
}

func (g tag) UpdateHash(h hash.Hash) error {
	return hashing.HashableString(g.name[:1]).UpdateHash(h)
}

func (g tag) Equals(other tag) bool {
	return g.name == other.name
}

func tags(names ...string) Sequence[tag] {
	return Select(From(names), func(n string) tag { return tag{name: n} })
}

func tagNames(t *testing.T, s Sequence[tag]) []string {
	t.Helper()

	return mustSlice(t, Select(s, func(g tag) string { return g.name }))
}

func TestDistinct(t *testing.T) {
	t.Parallel()

	once := Distinct(From(sample))
	assert.Equal(t, []int{4, 32, 44, 7, 15, 9, 50, 21, 38}, mustSlice(t, once))
	assert.Equal(t, mustSlice(t, once), mustSlice(t, Distinct(once)))

	byCase := DistinctBy(Of("Go", "go", "GO", "rust"), strings.ToLower)
	assert.Equal(t, []string{"Go", "rust"}, mustSlice(t, byCase))

	collected := DistinctCollectable(tags("ant", "ape", "ant", "bee", "ape"))
	assert.Equal(t, []string{"ant", "ape", "bee"}, tagNames(t, collected))

	require.ErrorIs(t, DistinctBy[string, string](Of("a"), nil).Err(), errors.ErrInvalidArgument)
}

func TestDistinctWhere(t *testing.T) {
	t.Parallel()

	// 1 is kept because nothing was kept yet; 2 is kept because the kept
	// set {1} has no even member; after that an even member exists and
	// every later element is dropped.
	assert.Equal(t, []int{1, 2}, mustSlice(t, Of(1, 2, 3, 4).DistinctWhere(isEven)))

	// An even first element blocks everything after it.
	assert.Equal(t, []int{4}, mustSlice(t, Of(4, 5, 6).DistinctWhere(isEven)))

	assert.Empty(t, mustSlice(t, Empty[int]().DistinctWhere(isEven)))
	require.ErrorIs(t, Of(1).DistinctWhere(nil).Err(), errors.ErrInvalidArgument)
}

func TestExceptAndIntersect(t *testing.T) {
	t.Parallel()

	left := Of(1, 2, 2, 3, 4, 4)
	right := Of(2, 4, 5)

	assert.Equal(t, []int{1, 3}, mustSlice(t, Except(left, right)))
	assert.Equal(t, []int{2, 2, 4, 4}, mustSlice(t, Intersect(left, right)))
	assert.Equal(t, []int{2, 4}, mustSlice(t, Distinct(Intersect(left, right))))

	// The zero value is an empty sequence, so it excludes nothing.
	var absent Sequence[int]
	assert.Equal(t, mustSlice(t, left), mustSlice(t, Except(left, absent)))
	assert.Empty(t, mustSlice(t, Intersect(left, absent)))

	lower := func(s string) string { return strings.ToLower(s) }
	assert.Equal(t, []string{"b"}, mustSlice(t, ExceptBy(Of("A", "b"), Of("a"), lower)))
	assert.Equal(t, []string{"A"}, mustSlice(t, IntersectBy(Of("A", "b"), Of("a"), lower)))

	// "ant" and "ape" share a hash bucket but are different tags.
	assert.Equal(t, []string{"ape", "bee"},
		tagNames(t, ExceptCollectable(tags("ant", "ape", "bee"), tags("ant"))))
	assert.Equal(t, []string{"ant", "ant"},
		tagNames(t, IntersectCollectable(tags("ant", "ape", "ant"), tags("ant", "cat"))))

	require.ErrorIs(t, ExceptBy[string, string](Of("a"), Of("b"), nil).Err(), errors.ErrInvalidArgument)
	require.ErrorIs(t, Except(left, right.Take(-1)).Err(), errors.ErrInvalidArgument)
}

func TestUnionDeduplicatesConcatDoesNot(t *testing.T) {
	t.Parallel()

	left := Of(1, 2, 2)
	right := Of(2, 3, 3)

	assert.Equal(t, []int{1, 2, 3}, mustSlice(t, Union(left, right)))
	assert.Equal(t, []int{1, 2, 2, 2, 3, 3}, mustSlice(t, left.Concat(right)))

	assert.Equal(t, []string{"Go", "rust"},
		mustSlice(t, UnionBy(Of("Go"), Of("GO", "rust"), strings.ToLower)))

	assert.Equal(t, []string{"ant", "ape", "bee"},
		tagNames(t, UnionCollectable(tags("ant", "ape", "ant"), tags("bee", "ape"))))

	require.ErrorIs(t, UnionBy[int, int](left, right, nil).Err(), errors.ErrInvalidArgument)
}

func TestSetOperatorsLeaveInputsAlone(t *testing.T) {
	t.Parallel()

	left := Of(3, 1, 3)
	right := Of(1)

	_ = Except(left, right)
	_ = Intersect(left, right)
	_ = Union(left, right)
	_ = Distinct(left)

	assert.Equal(t, []int{3, 1, 3}, mustSlice(t, left))
	assert.Equal(t, []int{1}, mustSlice(t, right))
}
