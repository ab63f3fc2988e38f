package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MergeItem adds quantity units of p to the cart. When the product is
// already in the cart the cumulative quantity is checked against stock, so
// repeated adds cannot build up a line the catalog could never satisfy.
// Stock is only reserved at order placement; this check is advisory.
func (c *Cart) MergeItem(p *Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			cumulative := c.Items[i].Quantity + quantity
			if cumulative > p.Stock {
				return &InsufficientStockError{ProductName: p.Name}
			}
			c.Items[i].Quantity = cumulative
			return nil
		}
	}
	if quantity > p.Stock {
		return &InsufficientStockError{ProductName: p.Name}
	}
	c.Items = append(c.Items, CartItem{ProductID: p.ID, Quantity: quantity})
	return nil
}

// RemoveItem drops the line for the given product. Removing a product that
// is not in the cart is a no-op.
func (c *Cart) RemoveItem(productID primitive.ObjectID) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}
