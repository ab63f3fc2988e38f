package repository

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"minishop/internal/models"
)

func (r *Repository) getCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var c models.Cart
	err := r.Carts.FindOne(ctx, bson.M{"user_id": userID}).Decode(&c)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrCartNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find cart")
	}
	return &c, nil
}

// GetOrCreateCart returns the user's cart, creating an empty one on first
// access. A concurrent first access loses the insert on the unique user
// index and falls back to reading the winner's cart.
func (r *Repository) GetOrCreateCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	cart, err := r.getCart(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !stderrors.Is(err, models.ErrCartNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	fresh := &models.Cart{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Items:     []models.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err = r.Carts.InsertOne(ctx, fresh)
	if mongo.IsDuplicateKeyError(err) {
		return r.getCart(ctx, userID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "insert cart")
	}
	return fresh, nil
}

func (r *Repository) saveCartItems(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	_, err := r.Carts.UpdateOne(ctx,
		bson.M{"_id": cart.ID},
		bson.M{"$set": bson.M{"items": cart.Items, "updated_at": cart.UpdatedAt}},
	)
	return errors.Wrap(err, "save cart items")
}

// AddToCart validates the product and the cumulative quantity against
// current stock, then persists the merged line. Stock itself is only
// reserved at order placement.
func (r *Repository) AddToCart(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.Cart, error) {
	product, err := r.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := r.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := cart.MergeItem(product, quantity); err != nil {
		return nil, err
	}
	if err := r.saveCartItems(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveFromCart drops the line for the given product. The cart must
// exist; a missing line is a no-op success.
func (r *Repository) RemoveFromCart(ctx context.Context, userID, productID primitive.ObjectID) (*models.Cart, error) {
	cart, err := r.getCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.RemoveItem(productID)
	if err := r.saveCartItems(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
