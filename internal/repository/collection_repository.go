package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"toy-marketplace/internal/models"
)

// CollectionRepository stores "my collection" wishlist entries.
type CollectionRepository struct {
	collection *mongo.Collection
}

func NewCollectionRepository(collection *mongo.Collection) *CollectionRepository {
	return &CollectionRepository{collection: collection}
}

func (r *CollectionRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.CollectionItem, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.CollectionItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListByBuyer returns every wishlist entry for the given buyer email.
func (r *CollectionRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]models.CollectionItem, error) {
	return r.find(ctx, bson.M{"buyerEmail": buyerEmail})
}

// ListByBuyerSorted returns a buyer's entries ordered by numeric price.
func (r *CollectionRepository) ListByBuyerSorted(ctx context.Context, buyerEmail string, ascending bool) ([]models.CollectionItem, error) {
	return r.find(ctx, bson.M{"buyerEmail": buyerEmail}, priceSortFindOptions(ascending))
}

// upsertPipeline builds the aggregation-pipeline update behind AddOrIncrement.
// On first insert quantity is the submitted value; when the document already
// exists quantity goes up by exactly one and the submitted value is ignored.
func upsertPipeline(item models.CollectionItem) bson.A {
	return bson.A{
		bson.M{"$set": bson.M{
			"toyId":      item.ToyID,
			"buyerEmail": item.BuyerEmail,
			"toyName":    item.ToyName,
			"price":      item.Price,
			"pictureUrl": item.PictureURL,
			"quantity": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{bson.M{"$type": "$quantity"}, "missing"}},
				item.Quantity,
				bson.M{"$add": bson.A{"$quantity", 1}},
			}},
		}},
	}
}

// AddOrIncrement inserts the entry or bumps the existing one for the same
// toyId, as a single upsert so concurrent adds cannot race the existence
// check into a duplicate. A unique index on toyId backs the invariant.
func (r *CollectionRepository) AddOrIncrement(ctx context.Context, item models.CollectionItem) (*mongo.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	return r.collection.UpdateOne(ctx,
		bson.M{"toyId": item.ToyID},
		upsertPipeline(item),
		options.Update().SetUpsert(true),
	)
}
