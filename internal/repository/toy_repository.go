package repository

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"toy-marketplace/internal/models"
)

const (
	// listLimit caps the public gallery query; the storefront has no
	// pagination cursor.
	listLimit = 20

	queryTimeout = 10 * time.Second
	writeTimeout = 5 * time.Second
)

// numericCollation sorts price numerically even for documents written by
// older clients that stored price as a string ("9" before "10").
var numericCollation = options.Collation{Locale: "en_US", NumericOrdering: true}

// galleryFindOptions caps the public gallery query at listLimit.
func galleryFindOptions() *options.FindOptions {
	return options.Find().SetLimit(listLimit)
}

// priceSortFindOptions orders by price with the numeric collation. Both the
// toy and collection sort endpoints share it.
func priceSortFindOptions(ascending bool) *options.FindOptions {
	dir := -1
	if ascending {
		dir = 1
	}
	return options.Find().
		SetSort(bson.D{{Key: "price", Value: dir}}).
		SetCollation(&numericCollation)
}

type ToyRepository struct {
	collection *mongo.Collection
}

func NewToyRepository(collection *mongo.Collection) *ToyRepository {
	return &ToyRepository{collection: collection}
}

func (r *ToyRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Toy, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	toys := []models.Toy{}
	if err := cursor.All(ctx, &toys); err != nil {
		return nil, err
	}
	return toys, nil
}

// List returns up to listLimit toys for the public gallery.
func (r *ToyRepository) List(ctx context.Context) ([]models.Toy, error) {
	return r.find(ctx, bson.M{}, galleryFindOptions())
}

// ListBySeller returns every toy listed under the given seller email.
func (r *ToyRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]models.Toy, error) {
	return r.find(ctx, bson.M{"sellerEmail": sellerEmail})
}

// ListBySellerSorted returns a seller's toys ordered by numeric price.
func (r *ToyRepository) ListBySellerSorted(ctx context.Context, sellerEmail string, ascending bool) ([]models.Toy, error) {
	return r.find(ctx, bson.M{"sellerEmail": sellerEmail}, priceSortFindOptions(ascending))
}

// SearchByName matches toyName by case-insensitive substring.
func (r *ToyRepository) SearchByName(ctx context.Context, name string) ([]models.Toy, error) {
	filter := bson.M{"toyName": primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}}
	return r.find(ctx, filter)
}

// ListBySubcategory matches the stored capitalized subCategory exactly;
// callers normalize casing before asking.
func (r *ToyRepository) ListBySubcategory(ctx context.Context, subCategory string) ([]models.Toy, error) {
	return r.find(ctx, bson.M{"subCategory": subCategory})
}

func (r *ToyRepository) FindByID(ctx context.Context, id string) (*models.Toy, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var toy models.Toy
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&toy)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &toy, nil
}

// Create inserts a new listing and returns the generated id.
func (r *ToyRepository) Create(ctx context.Context, toy *models.Toy) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	toy.ID = primitive.NewObjectID()
	res, err := r.collection.InsertOne(ctx, toy)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Update sets price, quantity and description on an existing listing.
// Unlike the storefront's first backend it never upserts: an unknown id is
// ErrNotFound, not a fresh partial document.
func (r *ToyRepository) Update(ctx context.Context, id string, update models.ToyUpdate) (*mongo.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	set := bson.M{}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Quantity != nil {
		set["quantity"] = *update.Quantity
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return res, nil
}

// DecrementQuantity atomically takes one unit off a listing's stock. The
// quantity floor is part of the filter, so concurrent decrements can never
// drive quantity below zero.
func (r *ToyRepository) DecrementQuantity(ctx context.Context, id string) (*models.Toy, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var toy models.Toy
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "quantity": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"quantity": -1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&toy)
	if err == mongo.ErrNoDocuments {
		// Either the toy does not exist or the stock is already at the
		// floor; look once more to tell the two apart.
		count, countErr := r.collection.CountDocuments(ctx, bson.M{"_id": objID})
		if countErr != nil {
			return nil, countErr
		}
		if count == 0 {
			return nil, ErrNotFound
		}
		return nil, ErrOutOfStock
	}
	if err != nil {
		return nil, err
	}
	return &toy, nil
}

// Delete removes a listing. A missing id is not an error; the deleted
// count in the result says whether anything matched.
func (r *ToyRepository) Delete(ctx context.Context, id string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
