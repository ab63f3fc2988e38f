package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// low cost keeps the hashing tests fast
const testCost = 4

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("password123", testCost)
	require.NoError(t, err)
	require.NotEqual(t, "password123", hash)

	assert.True(t, ComparePassword(hash, "password123"))
	assert.False(t, ComparePassword(hash, "wrong"))
	assert.False(t, ComparePassword("", "password123"))
}

func TestHashIfChanged(t *testing.T) {
	existing, err := HashPassword("old-password", testCost)
	require.NoError(t, err)

	t.Run("empty incoming keeps the existing hash", func(t *testing.T) {
		hash, err := HashIfChanged(existing, "", testCost)
		require.NoError(t, err)
		assert.Equal(t, existing, hash)
	})

	t.Run("new password produces a fresh hash", func(t *testing.T) {
		hash, err := HashIfChanged(existing, "new-password", testCost)
		require.NoError(t, err)
		assert.NotEqual(t, existing, hash)
		assert.True(t, ComparePassword(hash, "new-password"))
		assert.False(t, ComparePassword(hash, "old-password"))
	})
}
