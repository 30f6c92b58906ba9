package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"toy-marketplace/internal/models"
)

type SubcategoryRepository struct {
	collection *mongo.Collection
}

func NewSubcategoryRepository(collection *mongo.Collection) *SubcategoryRepository {
	return &SubcategoryRepository{collection: collection}
}

// List returns all subcategories in insertion order (_id ascending), which
// is the order the storefront renders its tabs in.
func (r *SubcategoryRepository) List(ctx context.Context) ([]models.Subcategory, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subcategories := []models.Subcategory{}
	if err := cursor.All(ctx, &subcategories); err != nil {
		return nil, err
	}
	return subcategories, nil
}
