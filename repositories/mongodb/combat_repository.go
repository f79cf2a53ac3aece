package mongodb

import (
	"context"

	"ringside/models"
	"ringside/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CombatRepository implements services.CombatStore on a Mongo collection
type CombatRepository struct {
	collection *mongo.Collection
}

func NewCombatRepository(db *mongo.Database) *CombatRepository {
	return &CombatRepository{collection: db.Collection("combats")}
}

// lookupStage expands a single reference field against another collection
func lookupStage(from, field string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: field},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: field},
	}}}
}

func unwindStage(field string) bson.D {
	return bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$" + field},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
}

// detailPipeline builds the populate pipeline: match (and any paging
// stages), then expand creator, opponent and gym into full documents. Paging
// happens before the lookups so only the page is expanded.
func detailPipeline(match bson.M, paging ...bson.D) mongo.Pipeline {
	pipeline := mongo.Pipeline{bson.D{{Key: "$match", Value: match}}}
	pipeline = append(pipeline, paging...)
	return append(pipeline,
		lookupStage("users", "creator"),
		unwindStage("creator"),
		lookupStage("users", "opponent"),
		unwindStage("opponent"),
		lookupStage("gyms", "gym"),
		unwindStage("gym"),
	)
}

func combatFilter(f services.CombatFilter) bson.M {
	m := bson.M{}
	if f.Status != "" {
		m["status"] = f.Status
	}
	if f.Creator != nil {
		m["creator"] = *f.Creator
	}
	if f.Opponent != nil {
		m["opponent"] = *f.Opponent
	}
	if f.UserAny != nil {
		m["$or"] = bson.A{
			bson.M{"creator": *f.UserAny},
			bson.M{"opponent": *f.UserAny},
		}
	}
	if f.Gym != nil {
		m["gym"] = *f.Gym
	}
	if f.VisibleOnly {
		m["isHidden"] = false
	}
	return m
}

func (r *CombatRepository) Insert(ctx context.Context, combat *models.Combat) error {
	result, err := r.collection.InsertOne(ctx, combat)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		combat.ID = oid
	}
	return nil
}

func (r *CombatRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Combat, error) {
	var combat models.Combat
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&combat)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &combat, nil
}

func (r *CombatRepository) FindDetailByID(ctx context.Context, id primitive.ObjectID) (*models.CombatDetail, error) {
	details, err := r.aggregateDetails(ctx, detailPipeline(bson.M{"_id": id}))
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return &details[0], nil
}

func (r *CombatRepository) FindDetail(ctx context.Context, filter services.CombatFilter) ([]models.CombatDetail, error) {
	return r.aggregateDetails(ctx, detailPipeline(combatFilter(filter)))
}

func (r *CombatRepository) FindPage(ctx context.Context, filter services.CombatFilter, skip, limit int64) ([]models.Combat, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, combatFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	combats := []models.Combat{}
	if err := cursor.All(ctx, &combats); err != nil {
		return nil, err
	}
	return combats, nil
}

func (r *CombatRepository) FindDetailPage(ctx context.Context, filter services.CombatFilter, skip, limit int64) ([]models.CombatDetail, error) {
	pipeline := detailPipeline(combatFilter(filter),
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: limit}},
	)
	return r.aggregateDetails(ctx, pipeline)
}

func (r *CombatRepository) Count(ctx context.Context, filter services.CombatFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, combatFilter(filter))
}

func (r *CombatRepository) SetFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, 0, err
	}
	return result.MatchedCount, result.ModifiedCount, nil
}

func (r *CombatRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *CombatRepository) aggregateDetails(ctx context.Context, pipeline mongo.Pipeline) ([]models.CombatDetail, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	details := []models.CombatDetail{}
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	return details, nil
}
