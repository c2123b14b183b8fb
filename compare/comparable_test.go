package compare

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type caseInsensitive string

func (s caseInsensitive) Equals(other caseInsensitive) bool {
	return strings.EqualFold(string(s), string(other))
}

type point struct {
	X, Y int
}

func (p point) Equals(other point) bool {
	return p.X == other.X && p.Y == other.Y
}

func TestComparable(t *testing.T) {
	t.Parallel()

	var word Comparable[caseInsensitive] = caseInsensitive("Hello")

	assert.True(t, word.Equals("hELLO"))
	assert.False(t, word.Equals("world"))

	var pt Comparable[point] = point{1, 2}

	assert.True(t, pt.Equals(point{1, 2}))
	assert.False(t, pt.Equals(point{2, 1}))
}

func TestOrderedAndReverse(t *testing.T) {
	t.Parallel()

	asc := Ordered[int]()
	desc := Reverse(asc)

	assert.Negative(t, asc(1, 2))
	assert.Positive(t, asc(2, 1))
	assert.Zero(t, asc(2, 2))
	assert.Positive(t, desc(1, 2))
	assert.Zero(t, desc(2, 2))
}

func TestByAndThen(t *testing.T) {
	t.Parallel()

	points := []point{{2, 1}, {1, 5}, {2, 0}, {1, 3}}

	slices.SortStableFunc(points, Then(
		By(func(p point) int { return p.X }, Ordered[int]()),
		By(func(p point) int { return p.Y }, Reverse(Ordered[int]())),
	))

	assert.Equal(t, []point{{1, 5}, {1, 3}, {2, 1}, {2, 0}}, points)
}

func TestThenWithNoComparatorsIsNeutral(t *testing.T) {
	t.Parallel()

	assert.Zero(t, Then[int]()(1, 2))
}

func TestNatural(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "numeric runs", a: "file2", b: "file10", want: -1},
		{name: "reversed", a: "file10", b: "file2", want: 1},
		{name: "equal", a: "file7", b: "file7", want: 0},
		{name: "plain letters", a: "alpha", b: "beta", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Natural(tt.a, tt.b))
		})
	}
}

func TestNaturalSorting(t *testing.T) {
	t.Parallel()

	items := []string{"img12", "img10", "img2", "img1"}
	slices.SortStableFunc(items, Natural)

	assert.Equal(t, []string{"img1", "img2", "img10", "img12"}, items)
}

func TestCollated(t *testing.T) {
	t.Parallel()

	byteOrder := []string{"zebra", "Äpfel", "apple"}
	slices.Sort(byteOrder)
	// Plain byte order puts the multi-byte 'Ä' after every ASCII letter.
	assert.Equal(t, "Äpfel", byteOrder[2])

	items := []string{"zebra", "Äpfel", "apple"}
	slices.SortStableFunc(items, Collated(language.German, collate.IgnoreCase))

	assert.Equal(t, []string{"Äpfel", "apple", "zebra"}, items)
}
