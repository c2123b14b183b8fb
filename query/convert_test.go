package query

import (
	"testing"

	"github.com/amp-labs/amp-query/errors"
	"github.com/amp-labs/amp-query/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMap(t *testing.T) {
	t.Parallel()

	byID, err := ToMap(From(rows), func(r row) int { return r.id })
	require.NoError(t, err)
	assert.Len(t, byID, 6)
	assert.Equal(t, "a", byID[4].group)

	_, err = ToMap(From(rows), byRank)
	require.ErrorIs(t, err, errors.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "duplicate key: 1")
	assert.Contains(t, err.Error(), "duplicate key: 2")

	_, err = ToMap[row, int](From(rows), nil)
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
}

func TestToMapLastKeepsLastWrite(t *testing.T) {
	t.Parallel()

	byGroupLast, err := ToMapLast(From(rows), byGroup)
	require.NoError(t, err)
	assert.Equal(t, map[string]row{
		"a": {6, "a", 1},
		"b": {5, "b", 2},
	}, byGroupLast)
}

func TestGroupBy(t *testing.T) {
	t.Parallel()

	groups := mustSlice(t, GroupBy(From(rows), byRank))
	require.Len(t, groups, 2)

	assert.Equal(t, 2, groups[0].Key)
	assert.Equal(t, []int{1, 4, 5}, ids(t, groups[0].Items))
	assert.Equal(t, 1, groups[1].Key)
	assert.Equal(t, []int{2, 3, 6}, ids(t, groups[1].Items))

	assert.Empty(t, mustSlice(t, GroupBy(Empty[row](), byRank)))
	require.ErrorIs(t, GroupBy[row, int](From(rows), nil).Err(), errors.ErrInvalidArgument)
}

func TestToOrderedSet(t *testing.T) {
	t.Parallel()

	words := Select(Of("b", "a", "b", "c"), func(s string) hashing.HashableString {
		return hashing.HashableString(s)
	})

	set, err := ToOrderedSet(words, nil)
	require.NoError(t, err)
	assert.Equal(t, []hashing.HashableString{"b", "a", "c"}, set.Entries())

	sha, err := ToOrderedSet(words, hashing.Sha256)
	require.NoError(t, err)
	assert.Equal(t, 3, sha.Size())

	_, err = ToOrderedSet(words.Skip(-1), nil)
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
}
