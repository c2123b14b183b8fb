package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrNoMatch)
		c.Add(ErrEmptySequence)

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Zero(t, c.Len())
	})
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Add(ErrDuplicateKey)
	c.Clear()

	assert.False(t, c.HasError())
	assert.NoError(t, c.GetError())
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		assert.NoError(t, c.GetError())
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err := fmt.Errorf("%w: 42", ErrDuplicateKey)
		c.Add(err)

		assert.Same(t, err, c.GetError()) //nolint:testifylint
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(fmt.Errorf("%w: 1", ErrDuplicateKey))
		c.Add(fmt.Errorf("%w: 2", ErrDuplicateKey))

		err := c.GetError()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrDuplicateKey)
		assert.Contains(t, err.Error(), "duplicate key: 1")
		assert.Contains(t, err.Error(), "duplicate key: 2")
	})
}

func TestSentinelsAreDistinct(t *testing.T) {
	t.Parallel()

	all := []error{
		ErrInvalidArgument,
		ErrEmptySequence,
		ErrNoMatch,
		ErrMultipleMatches,
		ErrIndexOutOfRange,
		ErrTypeMismatch,
		ErrDuplicateKey,
	}

	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}
