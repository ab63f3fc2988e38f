package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AssembleOrder turns a cart into order lines priced at the products'
// current prices. Every cart line must reference a product present in
// products and fit within its stock; a single bad line fails the whole
// assembly. The caller is responsible for applying the matching stock
// decrements atomically.
func AssembleOrder(cart *Cart, products map[primitive.ObjectID]*Product) ([]OrderItem, float64, error) {
	if cart == nil || len(cart.Items) == 0 {
		return nil, 0, ErrEmptyCart
	}

	items := make([]OrderItem, 0, len(cart.Items))
	var total float64
	for _, line := range cart.Items {
		p, ok := products[line.ProductID]
		if !ok {
			return nil, 0, ErrProductNotFound
		}
		if line.Quantity < 1 {
			return nil, 0, ErrInvalidQuantity
		}
		if line.Quantity > p.Stock {
			return nil, 0, &InsufficientStockError{ProductName: p.Name}
		}
		items = append(items, OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  line.Quantity,
			Price:     p.Price,
		})
		total += p.Price * float64(line.Quantity)
	}
	return items, total, nil
}
