package repository

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"minishop/internal/models"
)

// PlaceOrder converts the user's cart into a pending order. Inside one
// transaction it re-reads the cart, checks every line against current
// stock, decrements stock with a guarded update so stock can never go
// negative, inserts the order with prices snapshotted at this moment, and
// empties the cart. Any failure aborts the whole transaction.
func (r *Repository) PlaceOrder(ctx context.Context, userID primitive.ObjectID, shippingAddress string) (*models.Order, error) {
	// Cheap rejection before paying for a transaction. The cart is
	// re-read inside the transaction; this check is not authoritative.
	cart, err := r.getCart(ctx, userID)
	if stderrors.Is(err, models.ErrCartNotFound) {
		return nil, models.ErrEmptyCart
	}
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, models.ErrEmptyCart
	}

	var order *models.Order
	err = r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		order = nil

		var c models.Cart
		if err := r.Carts.FindOne(sc, bson.M{"user_id": userID}).Decode(&c); err != nil {
			if stderrors.Is(err, mongo.ErrNoDocuments) {
				return models.ErrEmptyCart
			}
			return errors.Wrap(err, "load cart")
		}
		if len(c.Items) == 0 {
			return models.ErrEmptyCart
		}

		products := make(map[primitive.ObjectID]*models.Product, len(c.Items))
		for _, line := range c.Items {
			var p models.Product
			err := r.Products.FindOne(sc, bson.M{"_id": line.ProductID}).Decode(&p)
			if stderrors.Is(err, mongo.ErrNoDocuments) {
				return models.ErrProductNotFound
			}
			if err != nil {
				return errors.Wrap(err, "load product")
			}
			products[p.ID] = &p
		}

		items, total, err := models.AssembleOrder(&c, products)
		if err != nil {
			return err
		}

		for _, item := range items {
			res, err := r.Products.UpdateOne(sc,
				bson.M{"_id": item.ProductID, "stock": bson.M{"$gte": item.Quantity}},
				bson.M{"$inc": bson.M{"stock": -item.Quantity}},
			)
			if err != nil {
				return errors.Wrap(err, "reserve stock")
			}
			// The guard in the filter turns a concurrent sell-out into a
			// zero-match rather than negative stock.
			if res.ModifiedCount == 0 {
				return &models.InsufficientStockError{ProductName: item.Name}
			}
		}

		now := time.Now().UTC()
		o := &models.Order{
			ID:              primitive.NewObjectID(),
			UserID:          userID,
			Items:           items,
			TotalAmount:     total,
			Status:          models.StatusPending,
			ShippingAddress: shippingAddress,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if _, err := r.Orders.InsertOne(sc, o); err != nil {
			return errors.Wrap(err, "insert order")
		}

		_, err = r.Carts.UpdateOne(sc,
			bson.M{"_id": c.ID},
			bson.M{"$set": bson.M{"items": []models.CartItem{}, "updated_at": now}},
		)
		if err != nil {
			return errors.Wrap(err, "clear cart")
		}

		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// CancelOrder reverses a pending order: each product's stock is
// incremented by its ordered quantity and the status flips to cancelled,
// both in one transaction. Only the owner or an admin may cancel, and only
// while the order is still pending.
func (r *Repository) CancelOrder(ctx context.Context, orderID, actorID primitive.ObjectID, actorIsAdmin bool) (*models.Order, error) {
	var order *models.Order
	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		order = nil

		var o models.Order
		if err := r.Orders.FindOne(sc, bson.M{"_id": orderID}).Decode(&o); err != nil {
			if stderrors.Is(err, mongo.ErrNoDocuments) {
				return models.ErrOrderNotFound
			}
			return errors.Wrap(err, "load order")
		}
		if o.Status != models.StatusPending {
			return models.ErrOrderNotPending
		}
		if o.UserID != actorID && !actorIsAdmin {
			return models.ErrForbidden
		}

		for _, item := range o.Items {
			// A product deleted since purchase has nothing to restock;
			// the cancellation still goes through.
			_, err := r.Products.UpdateOne(sc,
				bson.M{"_id": item.ProductID},
				bson.M{"$inc": bson.M{"stock": item.Quantity}},
			)
			if err != nil {
				return errors.Wrap(err, "return stock")
			}
		}

		now := time.Now().UTC()
		_, err := r.Orders.UpdateOne(sc,
			bson.M{"_id": o.ID},
			bson.M{"$set": bson.M{"status": models.StatusCancelled, "updated_at": now}},
		)
		if err != nil {
			return errors.Wrap(err, "update order status")
		}

		o.Status = models.StatusCancelled
		o.UpdatedAt = now
		order = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrderStatus advances an order along the status lifecycle. The
// update is conditioned on the status it was checked against, so a
// concurrent change surfaces as a conflict instead of a silent overwrite.
func (r *Repository) UpdateOrderStatus(ctx context.Context, orderID primitive.ObjectID, next models.OrderStatus) (*models.Order, error) {
	current, err := r.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := models.CheckTransition(current.Status, next); err != nil {
		return nil, err
	}

	var o models.Order
	err = r.Orders.FindOneAndUpdate(ctx,
		bson.M{"_id": orderID, "status": current.Status},
		bson.M{"$set": bson.M{"status": next, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&o)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrStatusConflict
	}
	if err != nil {
		return nil, errors.Wrap(err, "update order status")
	}
	return &o, nil
}

func (r *Repository) GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var o models.Order
	err := r.Orders.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find order")
	}
	return &o, nil
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Order, error) {
	return r.listOrders(ctx, bson.M{"user_id": userID})
}

func (r *Repository) ListAllOrders(ctx context.Context) ([]*models.Order, error) {
	return r.listOrders(ctx, bson.M{})
}

func (r *Repository) listOrders(ctx context.Context, filter bson.M) ([]*models.Order, error) {
	cur, err := r.Orders.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "find orders")
	}
	defer cur.Close(ctx)

	orders := []*models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, errors.Wrap(err, "decode orders")
	}
	return orders, nil
}
