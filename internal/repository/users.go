package repository

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"minishop/internal/auth"
	"minishop/internal/models"
)

func (r *Repository) CreateUser(ctx context.Context, u *models.User) error {
	u.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	_, err := r.Users.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return models.ErrDuplicateEmail
	}
	return errors.Wrap(err, "insert user")
}

func (r *Repository) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := r.Users.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	return &u, nil
}

// Authenticate resolves a user by email and checks the password. A missing
// account and a wrong password are indistinguishable to the caller.
func (r *Repository) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var u models.User
	err := r.Users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user by email")
	}
	if !auth.ComparePassword(u.PasswordHash, password) {
		return nil, models.ErrInvalidCredentials
	}
	return &u, nil
}
