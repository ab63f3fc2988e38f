package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Repository is the single data-access handle for the application. It is
// opened once at process start, shared across requests and closed at
// shutdown.
type Repository struct {
	client *mongo.Client

	Users    *mongo.Collection
	Products *mongo.Collection
	Carts    *mongo.Collection
	Orders   *mongo.Collection
}

func Open(ctx context.Context, uri, database string) (*Repository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "connect to mongodb")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "ping mongodb")
	}

	db := client.Database(database)
	return &Repository{
		client:   client,
		Users:    db.Collection("users"),
		Products: db.Collection("products"),
		Carts:    db.Collection("carts"),
		Orders:   db.Collection("orders"),
	}, nil
}

func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the unique indexes the data model relies on: one
// account per email, one cart per user.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "create users email index")
	}

	_, err = r.Carts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return errors.Wrap(err, "create carts user index")
}
