package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gym is a registered boxing gym that hosts combats and can log in
type Gym struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Place     string             `bson:"place" json:"place"`
	Price     float64            `bson:"price" json:"price"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Password  string             `bson:"password" json:"-"`
	IsHidden  bool               `bson:"isHidden" json:"isHidden"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
