package mongodb

import (
	"context"

	"ringside/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RatingRepository implements services.RatingStore
type RatingRepository struct {
	collection *mongo.Collection
}

func NewRatingRepository(db *mongo.Database) *RatingRepository {
	return &RatingRepository{collection: db.Collection("ratings")}
}

func (r *RatingRepository) Insert(ctx context.Context, rating *models.Rating) error {
	result, err := r.collection.InsertOne(ctx, rating)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		rating.ID = oid
	}
	return nil
}

func (r *RatingRepository) FindByCombat(ctx context.Context, combatID primitive.ObjectID) ([]models.Rating, error) {
	return r.find(ctx, bson.M{"combat": combatID})
}

func (r *RatingRepository) FindForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Rating, error) {
	return r.find(ctx, bson.M{"to": userID})
}

func (r *RatingRepository) find(ctx context.Context, filter bson.M) ([]models.Rating, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ratings := []models.Rating{}
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}
