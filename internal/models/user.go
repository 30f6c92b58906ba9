package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleOwner is the role value that grants owner-only UI sections.
const RoleOwner = "Owner"

type User struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email" binding:"required,email"`
	Name     string             `json:"name,omitempty" bson:"name,omitempty"`
	Role     string             `json:"role,omitempty" bson:"role,omitempty"`
	PhotoURL string             `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
}
