//go:build unit

package inventory_test

import (
	"strings"
	"testing"

	"keyshop/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodeString(t *testing.T) {
	t.Run("grouped format", func(t *testing.T) {
		code, err := inventory.NewCodeString(20)
		require.NoError(t, err)

		groups := strings.Split(code, "-")
		require.Len(t, groups, 4)
		for _, g := range groups {
			assert.Len(t, g, 5)
		}
	})

	t.Run("no ambiguous characters", func(t *testing.T) {
		code, err := inventory.NewCodeString(200)
		require.NoError(t, err)
		assert.NotContains(t, code, "I")
		assert.NotContains(t, code, "L")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "U")
	})

	t.Run("pairwise distinct over a batch", func(t *testing.T) {
		seen := make(map[string]struct{}, 1000)
		for range 1000 {
			code, err := inventory.NewCodeString(20)
			require.NoError(t, err)
			_, dup := seen[code]
			require.False(t, dup, "generated duplicate code %s", code)
			seen[code] = struct{}{}
		}
	})

	t.Run("non-positive length", func(t *testing.T) {
		_, err := inventory.NewCodeString(0)
		assert.ErrorIs(t, err, inventory.ErrInvalidCodeLength)
	})
}

func TestNewUnusedCode(t *testing.T) {
	productID := uuid.New()

	code, err := inventory.NewUnusedCode(productID, "AAAAA-BBBBB")
	require.NoError(t, err)
	assert.Equal(t, productID, code.ProductID())
	assert.Equal(t, "AAAAA-BBBBB", code.Code())
	assert.NotEqual(t, uuid.Nil, code.ID())

	_, err = inventory.NewUnusedCode(productID, "")
	assert.ErrorIs(t, err, inventory.ErrEmptyCode)
}
