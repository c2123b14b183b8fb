package zero

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Value[int]())
	assert.Empty(t, Value[string]())
	assert.Nil(t, Value[*int]())
	assert.Nil(t, Value[[]string]())
	assert.Equal(t, struct{ A int }{}, Value[struct{ A int }]())
}
