package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapf(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "unit %s", "Vector")

	assert.Contains(t, wrapped.Error(), "unit Vector")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWithHint(t *testing.T) {
	err := WithHint(New("bad name"), "use letters, digits and underscores")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "use letters, digits and underscores", hints[0])
}

func TestNewInvalidSpecError(t *testing.T) {
	err := NewInvalidSpecError("sanitized name %q is not an identifier", "a-b")

	assert.True(t, IsInvalidSpecError(err))
	assert.False(t, IsDuplicateNameError(err))
	assert.Contains(t, err.Error(), `"a-b"`)
	assert.Contains(t, err.Error(), "invalid type spec")
}

func TestNewDuplicateNameError(t *testing.T) {
	err := Wrap(NewDuplicateNameError("Vector%s declared twice", "Int"), "unit Vector")

	assert.True(t, IsDuplicateNameError(err))
	assert.False(t, IsInvalidSpecError(err))
	assert.Contains(t, err.Error(), "VectorInt declared twice")
}

func TestSentinelPredicatesOnNil(t *testing.T) {
	assert.False(t, IsInvalidSpecError(nil))
	assert.False(t, IsDuplicateNameError(nil))
	assert.False(t, IsNotFoundError(nil))
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("unit %s", "Missing")
	assert.True(t, IsNotFoundError(err))
	assert.True(t, Is(err, ErrNotFound))
}
