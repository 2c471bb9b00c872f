package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	t.Run("detailed error matches sentinel by code", func(t *testing.T) {
		err := NewDomainError("NOT_FOUND", "Product with ID 42 not found.")
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.False(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("wrapped error still matches", func(t *testing.T) {
		err := fmt.Errorf("lookup: %w", NewDomainError("INSUFFICIENT_STOCK", "Only 2 units available"))
		assert.True(t, errors.Is(err, ErrInsufficientStock))
	})

	t.Run("plain errors never match", func(t *testing.T) {
		assert.False(t, errors.Is(errors.New("boom"), ErrNotFound))
	})

	t.Run("message is the error text", func(t *testing.T) {
		assert.Equal(t, "Resource not found", ErrNotFound.Error())
	})
}
