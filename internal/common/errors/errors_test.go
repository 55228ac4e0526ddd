package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationCarriesFieldAndRule(t *testing.T) {
	err := Validation("salario", "range", "salario must be between 800000 and 10000000")

	assert.Equal(t, ErrCodeValidation, err.Code)
	assert.Equal(t, "salario", err.Field)
	assert.Equal(t, "range", err.Rule)
	assert.True(t, IsValidation(err))
}

func TestNotFoundCarriesID(t *testing.T) {
	err := NotFound("user", 42)

	assert.Equal(t, 42, err.ID)
	assert.Contains(t, err.Error(), "42")
	assert.True(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
}

func TestStorageWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage(cause)

	assert.True(t, IsStorage(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAsAppErrorThroughWrapping(t *testing.T) {
	inner := Conflict("employee", 7)
	wrapped := fmt.Errorf("creating employee: %w", inner)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeConflict, appErr.Code)
	assert.True(t, IsConflict(wrapped))
}

func TestAsAppErrorOnPlainError(t *testing.T) {
	_, ok := AsAppError(errors.New("plain"))
	assert.False(t, ok)
}
