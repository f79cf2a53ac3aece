package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a boxer who creates and receives combat invitations
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Weight    float64            `bson:"weight,omitempty" json:"weight,omitempty"`
	City      string             `bson:"city,omitempty" json:"city,omitempty"`
	IsHidden  bool               `bson:"isHidden" json:"isHidden"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
