package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func productFixture(name string, price float64, stock int) *Product {
	return &Product{ID: primitive.NewObjectID(), Name: name, Price: price, Stock: stock}
}

func TestAssembleOrder(t *testing.T) {
	productA := productFixture("Keyboard", 10, 5)
	productB := productFixture("Mouse", 5, 5)
	products := map[primitive.ObjectID]*Product{
		productA.ID: productA,
		productB.ID: productB,
	}

	t.Run("totals the lines at current prices", func(t *testing.T) {
		cart := &Cart{Items: []CartItem{
			{ProductID: productA.ID, Quantity: 2},
			{ProductID: productB.ID, Quantity: 1},
		}}

		items, total, err := AssembleOrder(cart, products)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 25.0, total)
		assert.Equal(t, 10.0, items[0].Price)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, "Keyboard", items[0].Name)
		assert.Equal(t, 5.0, items[1].Price)
	})

	t.Run("snapshot price is decoupled from later price changes", func(t *testing.T) {
		p := productFixture("Monitor", 100, 10)
		cart := &Cart{Items: []CartItem{{ProductID: p.ID, Quantity: 1}}}

		items, total, err := AssembleOrder(cart, map[primitive.ObjectID]*Product{p.ID: p})
		require.NoError(t, err)

		p.Price = 250
		assert.Equal(t, 100.0, items[0].Price)
		assert.Equal(t, 100.0, total)
	})

	t.Run("fails the whole order when one line exceeds stock", func(t *testing.T) {
		cart := &Cart{Items: []CartItem{
			{ProductID: productB.ID, Quantity: 1},
			{ProductID: productA.ID, Quantity: 10},
		}}

		items, total, err := AssembleOrder(cart, products)

		var stockErr *InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "Keyboard", stockErr.ProductName)
		assert.Nil(t, items)
		assert.Zero(t, total)
	})

	t.Run("empty cart", func(t *testing.T) {
		_, _, err := AssembleOrder(&Cart{}, products)
		assert.ErrorIs(t, err, ErrEmptyCart)

		_, _, err = AssembleOrder(nil, products)
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("vanished product fails instead of skipping the line", func(t *testing.T) {
		cart := &Cart{Items: []CartItem{
			{ProductID: productA.ID, Quantity: 1},
			{ProductID: primitive.NewObjectID(), Quantity: 1},
		}}

		_, _, err := AssembleOrder(cart, products)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("quantity below one", func(t *testing.T) {
		cart := &Cart{Items: []CartItem{{ProductID: productA.ID, Quantity: 0}}}

		_, _, err := AssembleOrder(cart, products)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("line equal to stock is allowed", func(t *testing.T) {
		cart := &Cart{Items: []CartItem{{ProductID: productA.ID, Quantity: 5}}}

		items, total, err := AssembleOrder(cart, products)
		require.NoError(t, err)
		assert.Equal(t, 50.0, total)
		assert.Len(t, items, 1)
	})
}
