package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"toy-marketplace/internal/models"
)

// Store interfaces consumed by the handlers. The concrete implementations
// live in internal/repository; tests substitute stubs.

type ToyStore interface {
	List(ctx context.Context) ([]models.Toy, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]models.Toy, error)
	ListBySellerSorted(ctx context.Context, sellerEmail string, ascending bool) ([]models.Toy, error)
	SearchByName(ctx context.Context, name string) ([]models.Toy, error)
	ListBySubcategory(ctx context.Context, subCategory string) ([]models.Toy, error)
	FindByID(ctx context.Context, id string) (*models.Toy, error)
	Create(ctx context.Context, toy *models.Toy) (string, error)
	Update(ctx context.Context, id string, update models.ToyUpdate) (*mongo.UpdateResult, error)
	DecrementQuantity(ctx context.Context, id string) (*models.Toy, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type SubcategoryStore interface {
	List(ctx context.Context) ([]models.Subcategory, error)
}

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	IsOwner(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) (string, error)
}

type CollectionStore interface {
	ListByBuyer(ctx context.Context, buyerEmail string) ([]models.CollectionItem, error)
	ListByBuyerSorted(ctx context.Context, buyerEmail string, ascending bool) ([]models.CollectionItem, error)
	AddOrIncrement(ctx context.Context, item models.CollectionItem) (*mongo.UpdateResult, error)
}

type PaymentStore interface {
	Create(ctx context.Context, payment bson.M) (string, error)
}
