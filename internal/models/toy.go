package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Toy is a marketplace listing. Field names follow the document shape the
// web client reads, so bson and json tags match.
type Toy struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ToyName     string             `json:"toyName" bson:"toyName" binding:"required"`
	SubCategory string             `json:"subCategory" bson:"subCategory" binding:"required"`
	Price       float64            `json:"price" bson:"price"`
	Quantity    int64              `json:"quantity" bson:"quantity"`
	Description string             `json:"description" bson:"description"`
	SellerEmail string             `json:"sellerEmail" bson:"sellerEmail" binding:"required"`
	SellerName  string             `json:"sellerName,omitempty" bson:"sellerName,omitempty"`
	PictureURL  string             `json:"pictureUrl,omitempty" bson:"pictureUrl,omitempty"`
	Rating      string             `json:"rating,omitempty" bson:"rating,omitempty"`
}

// ToyUpdate carries the only three fields the update endpoint may change.
type ToyUpdate struct {
	Price       *float64 `json:"price"`
	Quantity    *int64   `json:"quantity"`
	Description *string  `json:"description"`
}
