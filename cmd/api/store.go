package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"minishop/internal/models"
)

// Store is the data-access surface the handlers depend on.
// *repository.Repository satisfies it.
type Store interface {
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)

	CreateProduct(ctx context.Context, p *models.Product) error
	GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	ListProducts(ctx context.Context, category, search string) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, update models.ProductUpdate) (*models.Product, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error

	GetOrCreateCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	AddToCart(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.Cart, error)
	RemoveFromCart(ctx context.Context, userID, productID primitive.ObjectID) (*models.Cart, error)

	PlaceOrder(ctx context.Context, userID primitive.ObjectID, shippingAddress string) (*models.Order, error)
	CancelOrder(ctx context.Context, orderID, actorID primitive.ObjectID, actorIsAdmin bool) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID primitive.ObjectID, next models.OrderStatus) (*models.Order, error)
	GetOrder(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Order, error)
	ListAllOrders(ctx context.Context) ([]*models.Order, error)
}
