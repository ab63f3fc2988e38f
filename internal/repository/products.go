package repository

import (
	"context"
	stderrors "errors"
	"regexp"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"minishop/internal/models"
)

func (r *Repository) CreateProduct(ctx context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Images == nil {
		p.Images = []string{}
	}

	_, err := r.Products.InsertOne(ctx, p)
	return errors.Wrap(err, "insert product")
}

func (r *Repository) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var p models.Product
	err := r.Products.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find product")
	}
	return &p, nil
}

// ListProducts filters by exact category and case-insensitive name
// substring. The catch-all "All Products" category matches everything.
func (r *Repository) ListProducts(ctx context.Context, category, search string) ([]*models.Product, error) {
	filter := bson.M{}
	if category != "" && category != "All Products" {
		filter["category"] = category
	}
	if search != "" {
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
	}

	cur, err := r.Products.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "find products")
	}
	defer cur.Close(ctx)

	products := []*models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}
	return products, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, id primitive.ObjectID, update models.ProductUpdate) (*models.Product, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Stock != nil {
		set["stock"] = *update.Stock
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Images != nil {
		set["images"] = *update.Images
	}

	var p models.Product
	err := r.Products.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "update product")
	}
	return &p, nil
}

func (r *Repository) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Products.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "delete product")
	}
	if res.DeletedCount == 0 {
		return models.ErrProductNotFound
	}
	return nil
}
