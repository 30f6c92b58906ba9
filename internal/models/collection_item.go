package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CollectionItem is a "my collection" wishlist entry. At most one document
// exists per toyId: adding the same toy again increments Quantity instead
// of inserting a duplicate.
type CollectionItem struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ToyID      string             `json:"toyId" bson:"toyId" binding:"required"`
	BuyerEmail string             `json:"buyerEmail" bson:"buyerEmail" binding:"required"`
	ToyName    string             `json:"toyName,omitempty" bson:"toyName,omitempty"`
	Price      float64            `json:"price" bson:"price"`
	Quantity   int64              `json:"quantity" bson:"quantity"`
	PictureURL string             `json:"pictureUrl,omitempty" bson:"pictureUrl,omitempty"`
}
