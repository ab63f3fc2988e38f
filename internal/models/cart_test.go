package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCartMergeItem(t *testing.T) {
	t.Run("appends a new line", func(t *testing.T) {
		p := productFixture("Hoodie", 85, 4)
		cart := &Cart{}

		require.NoError(t, cart.MergeItem(p, 2))
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.Equal(t, p.ID, cart.Items[0].ProductID)
	})

	t.Run("cumulative add past stock fails without touching the line", func(t *testing.T) {
		p := productFixture("Hoodie", 85, 4)
		cart := &Cart{}
		require.NoError(t, cart.MergeItem(p, 2))

		err := cart.MergeItem(p, 3)

		var stockErr *InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "Hoodie", stockErr.ProductName)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("cumulative add within stock increments the existing line", func(t *testing.T) {
		p := productFixture("Hoodie", 85, 4)
		cart := &Cart{}
		require.NoError(t, cart.MergeItem(p, 2))

		require.NoError(t, cart.MergeItem(p, 2))
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 4, cart.Items[0].Quantity)
	})

	t.Run("new line past stock fails", func(t *testing.T) {
		p := productFixture("Watch", 129, 1)
		cart := &Cart{}

		var stockErr *InsufficientStockError
		assert.ErrorAs(t, cart.MergeItem(p, 2), &stockErr)
		assert.Empty(t, cart.Items)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p := productFixture("Watch", 129, 10)
		cart := &Cart{}

		assert.ErrorIs(t, cart.MergeItem(p, 0), ErrInvalidQuantity)
		assert.ErrorIs(t, cart.MergeItem(p, -1), ErrInvalidQuantity)
	})
}

func TestCartRemoveItem(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	cart := &Cart{Items: []CartItem{
		{ProductID: a, Quantity: 1},
		{ProductID: b, Quantity: 2},
	}}

	cart.RemoveItem(a)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, b, cart.Items[0].ProductID)

	// absent product is a no-op
	cart.RemoveItem(a)
	assert.Len(t, cart.Items, 1)
}
