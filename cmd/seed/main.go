package main

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"minishop/internal/auth"
	"minishop/internal/config"
	"minishop/internal/models"
	"minishop/internal/repository"
)

var demoProducts = []models.Product{
	{
		Name:        "Quantum X1 Wireless Headphones",
		Description: "Next-generation noise cancelling headphones with 50-hour battery life and spatial audio.",
		Price:       349,
		Stock:       45,
		Category:    "Electronics",
		Images:      []string{"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?q=80&w=1000&auto=format&fit=crop"},
	},
	{
		Name:        "Zenith Mechanical Keyboard",
		Description: "Precision-engineered mechanical keyboard with hot-swappable switches and aluminum frame.",
		Price:       189,
		Stock:       25,
		Category:    "Electronics",
		Images:      []string{"https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?q=80&w=1000&auto=format&fit=crop"},
	},
	{
		Name:        "Vortex 27\" 4K Monitor",
		Description: "Pro-grade IPS display with 144Hz refresh rate and HDR10 support for creative professionals.",
		Price:       599,
		Stock:       15,
		Category:    "Electronics",
		Images:      []string{"https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?q=80&w=1000&auto=format&fit=crop"},
	},
	{
		Name:        "Classic Urban Hoodie",
		Description: "Heavyweight organic cotton hoodie with a modern oversized fit and minimalist embroidery.",
		Price:       85,
		Stock:       120,
		Category:    "Fashion",
		Images:      []string{"https://images.unsplash.com/photo-1556821840-3a63f95609a7?q=80&w=1000&auto=format&fit=crop"},
	},
	{
		Name:        "Essential Slim-Fit Chinos",
		Description: "Versatile stretch-cotton chinos perfect for both office and weekend wear.",
		Price:       65,
		Stock:       80,
		Category:    "Fashion",
		Images:      []string{"https://images.unsplash.com/photo-1624371414361-e6e9efc5837a?q=80&w=1000&auto=format&fit=crop"},
	},
	{
		Name:        "Minimalist Ceramic Vase Set",
		Description: "Handcrafted matte ceramic vases in earth tones, set of three for contemporary decor.",
		Price:       45,
		Stock:       200,
		Category:    "Home & Living",
		Images:      []string{"https://images.unsplash.com/photo-1581783898377-1c85bf937427?q=80&w=1000&auto=format&fit=crop"},
	},
	{
		Name:        "Nordic Oak Coffee Table",
		Description: "Sustainably sourced solid oak coffee table with clean lines and a durable natural finish.",
		Price:       249,
		Stock:       12,
		Category:    "Home & Living",
		Images:      []string{"https://images.unsplash.com/photo-1533090161767-e6ffed986c88?q=80&w=1000&auto=format&fit=crop"},
	},
	{
		Name:        "Cognac Leather Weekender",
		Description: "Full-grain Italian leather duffle bag with brass hardware and dedicated laptop sleeve.",
		Price:       195,
		Stock:       30,
		Category:    "Accessories",
		Images:      []string{"https://images.unsplash.com/photo-1547949003-9792a18a2601?q=80&w=1000&auto=format&fit=crop"},
	},
	{
		Name:        "Obsidian Minimalist Watch",
		Description: "Ultra-thin case with sapphire crystal glass and a genuine top-grain leather strap.",
		Price:       129,
		Stock:       60,
		Category:    "Accessories",
		Images:      []string{"https://images.unsplash.com/photo-1524592094714-0f0654e20314?q=80&w=1000&auto=format&fit=crop"},
	},
}

type demoUser struct {
	firstName, lastName, email, password, role string
}

var demoUsers = []demoUser{
	{"Admin", "User", "admin@example.com", "password123", models.RoleAdmin},
	{"Demo", "Customer", "customer@example.com", "password123", models.RoleCustomer},
}

func main() {
	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo, err := repository.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.WithError(err).Fatal("open mongodb")
	}
	defer repo.Close(ctx)

	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.WithError(err).Fatal("ensure indexes")
	}

	if _, err := repo.Products.DeleteMany(ctx, bson.M{}); err != nil {
		logger.WithError(err).Fatal("clear products")
	}
	for i := range demoProducts {
		if err := repo.CreateProduct(ctx, &demoProducts[i]); err != nil {
			logger.WithError(err).Fatal("seed product")
		}
	}
	logger.WithField("count", len(demoProducts)).Info("products seeded")

	for _, du := range demoUsers {
		hash, err := auth.HashPassword(du.password, cfg.BcryptCost)
		if err != nil {
			logger.WithError(err).Fatal("hash password")
		}
		user := &models.User{
			FirstName:    du.firstName,
			LastName:     du.lastName,
			Email:        du.email,
			PasswordHash: hash,
			Role:         du.role,
		}
		err = repo.CreateUser(ctx, user)
		if stderrors.Is(err, models.ErrDuplicateEmail) {
			logger.WithField("email", du.email).Info("user already exists, skipping")
			continue
		}
		if err != nil {
			logger.WithError(err).Fatal("seed user")
		}
	}
	logger.Info("seeding complete")
}
