package assert

import (
	"testing"

	"github.com/amp-labs/amp-query/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType(t *testing.T) {
	t.Parallel()

	t.Run("matching type", func(t *testing.T) {
		t.Parallel()

		v, err := Type[string](any("hello"))
		require.NoError(t, err)
		assert.Equal(t, "hello", v)
	})

	t.Run("mismatched type", func(t *testing.T) {
		t.Parallel()

		v, err := Type[int](any("hello"))
		require.ErrorIs(t, err, errors.ErrTypeMismatch)
		assert.Contains(t, err.Error(), "expected type int, but received string")
		assert.Zero(t, v)
	})

	t.Run("nil into interface", func(t *testing.T) {
		t.Parallel()

		_, err := Type[error](nil)
		require.ErrorIs(t, err, errors.ErrTypeMismatch)
	})
}

func TestIs(t *testing.T) {
	t.Parallel()

	assert.True(t, Is[int](any(1)))
	assert.False(t, Is[int](any(1.0)))
	assert.True(t, Is[fmtStringer](any(stringerImpl{})))
}

type fmtStringer interface {
	String() string
}

type stringerImpl struct{}

func (stringerImpl) String() string { return "x" }
