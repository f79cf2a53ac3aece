package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Combat lifecycle statuses. A rejected invitation is deleted outright, so
// StatusRejected only ever appears as an input to the respond operation.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Combat is a scheduled match between two boxers, hosted by a gym
type Combat struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Creator   primitive.ObjectID `bson:"creator" json:"creator"`
	Opponent  primitive.ObjectID `bson:"opponent" json:"opponent"`
	Gym       primitive.ObjectID `bson:"gym" json:"gym"`
	Date      time.Time          `bson:"date" json:"date"`
	Status    string             `bson:"status" json:"status"`
	IsHidden  bool               `bson:"isHidden" json:"isHidden"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CombatDetail is a combat with its creator, opponent and gym references
// expanded into full documents
type CombatDetail struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Creator   User               `bson:"creator" json:"creator"`
	Opponent  User               `bson:"opponent" json:"opponent"`
	Gym       Gym                `bson:"gym" json:"gym"`
	Date      time.Time          `bson:"date" json:"date"`
	Status    string             `bson:"status" json:"status"`
	IsHidden  bool               `bson:"isHidden" json:"isHidden"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
