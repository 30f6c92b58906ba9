package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Subcategory populates the category tabs on the storefront. Read-only:
// there is no write endpoint for it.
type Subcategory struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Label string             `json:"label,omitempty" bson:"label,omitempty"`
}
