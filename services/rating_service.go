package services

import (
	"context"
	"fmt"
	"time"

	"ringside/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RatingStore is the storage surface for ratings. Ratings are append-only;
// there is no update or delete.
type RatingStore interface {
	Insert(ctx context.Context, rating *models.Rating) error
	FindByCombat(ctx context.Context, combatID primitive.ObjectID) ([]models.Rating, error)
	FindForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Rating, error)
}

type RatingService struct {
	store   RatingStore
	combats CombatStore
}

func NewRatingService(store RatingStore, combats CombatStore) *RatingService {
	return &RatingService{store: store, combats: combats}
}

type CreateRatingInput struct {
	Combat  string
	From    string
	To      string
	Score   int
	Comment string
}

// Create validates and inserts a rating for an existing combat
func (s *RatingService) Create(ctx context.Context, input CreateRatingInput) (*models.Rating, error) {
	if input.Score < 1 || input.Score > 5 {
		return nil, fmt.Errorf("%w: score must be between 1 and 5", ErrValidation)
	}

	combatID, err := parseRef(input.Combat)
	if err != nil {
		return nil, err
	}
	from, err := parseRef(input.From)
	if err != nil {
		return nil, err
	}
	to, err := parseRef(input.To)
	if err != nil {
		return nil, err
	}

	combat, err := s.combats.FindByID(ctx, combatID)
	if err != nil {
		return nil, err
	}
	if combat == nil {
		return nil, ErrCombatNotFound
	}

	rating := &models.Rating{
		Combat:    combatID,
		From:      from,
		To:        to,
		Score:     input.Score,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}
	if err := s.store.Insert(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

// ByCombat lists all ratings left on a combat
func (s *RatingService) ByCombat(ctx context.Context, combatID string) ([]models.Rating, error) {
	cid, err := parseRef(combatID)
	if err != nil {
		return nil, err
	}
	return s.store.FindByCombat(ctx, cid)
}

// ForUser lists the ratings a user has received
func (s *RatingService) ForUser(ctx context.Context, userID string) ([]models.Rating, error) {
	uid, err := parseRef(userID)
	if err != nil {
		return nil, err
	}
	return s.store.FindForUser(ctx, uid)
}
