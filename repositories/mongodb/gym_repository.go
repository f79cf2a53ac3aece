package mongodb

import (
	"context"

	"ringside/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GymRepository implements services.GymStore
type GymRepository struct {
	collection *mongo.Collection
}

func NewGymRepository(db *mongo.Database) *GymRepository {
	return &GymRepository{collection: db.Collection("gyms")}
}

func (r *GymRepository) Insert(ctx context.Context, gym *models.Gym) error {
	result, err := r.collection.InsertOne(ctx, gym)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		gym.ID = oid
	}
	return nil
}

func (r *GymRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Gym, error) {
	var gym models.Gym
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&gym)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gym, nil
}

func (r *GymRepository) FindByEmail(ctx context.Context, email string) (*models.Gym, error) {
	var gym models.Gym
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&gym)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gym, nil
}

func visibilityFilter(visibleOnly bool) bson.M {
	if visibleOnly {
		return bson.M{"isHidden": false}
	}
	return bson.M{}
}

func (r *GymRepository) FindPage(ctx context.Context, visibleOnly bool, skip, limit int64) ([]models.Gym, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, visibilityFilter(visibleOnly), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	gyms := []models.Gym{}
	if err := cursor.All(ctx, &gyms); err != nil {
		return nil, err
	}
	return gyms, nil
}

func (r *GymRepository) Count(ctx context.Context, visibleOnly bool) (int64, error) {
	return r.collection.CountDocuments(ctx, visibilityFilter(visibleOnly))
}

func (r *GymRepository) SetFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, 0, err
	}
	return result.MatchedCount, result.ModifiedCount, nil
}

func (r *GymRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
