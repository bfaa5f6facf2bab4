package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeError struct {
	Column string
}

func (e decodeError) Error() string { return "cannot decode " + e.Column }

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "failed to load credit card"))
	})

	t.Run("sentinel chain", func(t *testing.T) {
		insufficient := Wrap(ErrInvalidInput, "insufficient credit")
		wrapped := Wrap(insufficient, "failed to charge")

		assert.EqualError(t, wrapped, "failed to charge: insufficient credit: invalid input")
		assert.True(t, Is(wrapped, ErrInvalidInput))
		assert.True(t, Is(wrapped, insufficient))
		assert.False(t, Is(wrapped, ErrNotFound))
	})
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrConflict, ErrInvalidInput, ErrUnauthorized, ErrForbidden}

	for i, a := range sentinels {
		for j, b := range sentinels {
			assert.Equal(t, i == j, Is(a, b), "%v vs %v", a, b)
		}
	}
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("failed to load credit card: %w", decodeError{Column: "cvv"})

	var target decodeError
	require.True(t, As(err, &target))
	assert.Equal(t, "cvv", target.Column)

	assert.False(t, As(errors.New("other"), &target))
}

func TestNew(t *testing.T) {
	err := New("field encryptor is closed")
	assert.EqualError(t, err, "field encryptor is closed")
	assert.NotSame(t, err, New("field encryptor is closed"))

	for _, sentinel := range []error{ErrNotFound, ErrConflict, ErrInvalidInput, ErrUnauthorized, ErrForbidden} {
		assert.False(t, Is(err, sentinel), "%v", sentinel)
	}
}
