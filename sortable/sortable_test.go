package sortable

import (
	"math"
	"slices"
	"testing"

	"github.com/amp-labs/amp-query/compare"
	"github.com/stretchr/testify/assert"
)

type version struct {
	major, minor int
}

func (v version) Equals(o version) bool {
	return v == o
}

func (v version) LessThan(o version) bool {
	if v.major != o.major {
		return v.major < o.major
	}

	return v.minor < o.minor
}

func TestCompare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, Compare(Int(1), Int(2)))
	assert.Equal(t, 1, Compare(Int(2), Int(1)))
	assert.Equal(t, 0, Compare(Int(2), Int(2)))
	assert.Equal(t, -1, Compare(String("a"), String("b")))
	assert.Equal(t, -1, Compare(version{1, 9}, version{2, 0}))
}

func TestFloatNaNOrdering(t *testing.T) {
	t.Parallel()

	nan := Float(math.NaN())

	assert.True(t, nan.Equals(nan))
	assert.True(t, nan.LessThan(Float(-1)))
	assert.False(t, Float(-1).LessThan(nan))
	assert.False(t, nan.LessThan(nan))

	values := []Float{3, nan, -2, 0.5}
	slices.SortStableFunc(values, Compare[Float])

	assert.True(t, values[0].isNaN())
	assert.Equal(t, []Float{-2, 0.5, 3}, values[1:])
}

func TestCompareWithBy(t *testing.T) {
	t.Parallel()

	type release struct {
		name string
		ver  version
	}

	releases := []release{
		{"c", version{2, 0}},
		{"a", version{1, 10}},
		{"b", version{1, 2}},
	}

	slices.SortStableFunc(releases, compare.By(func(r release) version { return r.ver }, Compare[version]))

	assert.Equal(t, "b", releases[0].name)
	assert.Equal(t, "a", releases[1].name)
	assert.Equal(t, "c", releases[2].name)
}
