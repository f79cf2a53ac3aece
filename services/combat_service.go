package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"ringside/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CombatFilter narrows combat queries. Nil reference fields are ignored.
// UserAny matches combats where the user is either creator or opponent.
type CombatFilter struct {
	Status      string
	Creator     *primitive.ObjectID
	Opponent    *primitive.ObjectID
	UserAny     *primitive.ObjectID
	Gym         *primitive.ObjectID
	VisibleOnly bool
}

// CombatStore is what the combat service needs from the storage layer.
// The Mongo implementation lives in repositories/mongodb; tests use an
// in-memory fake.
type CombatStore interface {
	Insert(ctx context.Context, combat *models.Combat) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Combat, error)
	FindDetailByID(ctx context.Context, id primitive.ObjectID) (*models.CombatDetail, error)
	FindDetail(ctx context.Context, filter CombatFilter) ([]models.CombatDetail, error)
	FindPage(ctx context.Context, filter CombatFilter, skip, limit int64) ([]models.Combat, error)
	FindDetailPage(ctx context.Context, filter CombatFilter, skip, limit int64) ([]models.CombatDetail, error)
	Count(ctx context.Context, filter CombatFilter) (int64, error)
	SetFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (matched, modified int64, err error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type CombatService struct {
	store CombatStore
}

func NewCombatService(store CombatStore) *CombatService {
	return &CombatService{store: store}
}

// CreateCombatInput carries reference ids in their string form; they are
// normalized to ObjectIDs at this boundary.
type CreateCombatInput struct {
	Creator  string
	Opponent string
	Gym      string
	Date     time.Time
}

// CombatPage is the pagination envelope for unexpanded combats
type CombatPage struct {
	Combats      []models.Combat `json:"combats"`
	TotalCombats int64           `json:"totalCombats"`
	TotalPages   int64           `json:"totalPages"`
	CurrentPage  int64           `json:"currentPage"`
	PageSize     int64           `json:"pageSize"`
}

// CombatDetailPage is the pagination envelope for expanded combats
type CombatDetailPage struct {
	Combats      []models.CombatDetail `json:"combats"`
	TotalCombats int64                 `json:"totalCombats"`
	TotalPages   int64                 `json:"totalPages"`
	CurrentPage  int64                 `json:"currentPage"`
	PageSize     int64                 `json:"pageSize"`
}

// RespondResult carries either the accepted combat or the deletion marker
type RespondResult struct {
	Combat  *models.Combat `json:"combat,omitempty"`
	Deleted bool           `json:"deleted,omitempty"`
}

// UpdateAck mirrors the driver's update acknowledgment; callers re-fetch to
// see the new state
type UpdateAck struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteAck reports how many documents were removed
type DeleteAck struct {
	DeletedCount int64 `json:"deletedCount"`
}

// parseRef normalizes a string identifier into the store's reference type
func parseRef(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid id %q", ErrValidation, id)
	}
	return oid, nil
}

// Create inserts a new combat in pending state
func (s *CombatService) Create(ctx context.Context, input CreateCombatInput) (*models.Combat, error) {
	if input.Creator == "" || input.Opponent == "" || input.Gym == "" {
		return nil, fmt.Errorf("%w: creator, opponent and gym are required", ErrValidation)
	}

	creator, err := parseRef(input.Creator)
	if err != nil {
		return nil, err
	}
	opponent, err := parseRef(input.Opponent)
	if err != nil {
		return nil, err
	}
	gym, err := parseRef(input.Gym)
	if err != nil {
		return nil, err
	}

	combat := &models.Combat{
		Creator:   creator,
		Opponent:  opponent,
		Gym:       gym,
		Date:      input.Date,
		Status:    models.StatusPending,
		IsHidden:  false,
		CreatedAt: time.Now(),
	}
	if err := s.store.Insert(ctx, combat); err != nil {
		return nil, err
	}
	return combat, nil
}

// FutureCombats returns all accepted combats where the user takes part,
// fully expanded. Unpaginated.
func (s *CombatService) FutureCombats(ctx context.Context, userID string) ([]models.CombatDetail, error) {
	uid, err := parseRef(userID)
	if err != nil {
		return nil, err
	}
	return s.store.FindDetail(ctx, CombatFilter{Status: models.StatusAccepted, UserAny: &uid})
}

// PendingInvitations returns pending combats where the user is the opponent
func (s *CombatService) PendingInvitations(ctx context.Context, userID string) ([]models.CombatDetail, error) {
	uid, err := parseRef(userID)
	if err != nil {
		return nil, err
	}
	return s.store.FindDetail(ctx, CombatFilter{Status: models.StatusPending, Opponent: &uid})
}

// SentInvitations returns pending combats the user created
func (s *CombatService) SentInvitations(ctx context.Context, userID string) ([]models.CombatDetail, error) {
	uid, err := parseRef(userID)
	if err != nil {
		return nil, err
	}
	return s.store.FindDetail(ctx, CombatFilter{Status: models.StatusPending, Creator: &uid})
}

// RespondToInvitation lets the invited opponent accept or reject a pending
// combat. Accepting persists the status; rejecting deletes the combat.
func (s *CombatService) RespondToInvitation(ctx context.Context, combatID, userID, status string) (*RespondResult, error) {
	cid, err := parseRef(combatID)
	if err != nil {
		return nil, err
	}
	uid, err := parseRef(userID)
	if err != nil {
		return nil, err
	}

	combat, err := s.store.FindByID(ctx, cid)
	if err != nil {
		return nil, err
	}
	if combat == nil {
		return nil, ErrCombatNotFound
	}
	if combat.Opponent != uid {
		return nil, ErrNotOpponent
	}

	switch status {
	case models.StatusAccepted:
		if _, _, err := s.store.SetFields(ctx, cid, bson.M{"status": models.StatusAccepted}); err != nil {
			return nil, err
		}
		combat.Status = models.StatusAccepted
		return &RespondResult{Combat: combat}, nil
	case models.StatusRejected:
		if _, err := s.store.Delete(ctx, cid); err != nil {
			return nil, err
		}
		return &RespondResult{Deleted: true}, nil
	default:
		return nil, ErrInvalidStatus
	}
}

// AllCombats returns one page of combats, hidden ones included, unexpanded
func (s *CombatService) AllCombats(ctx context.Context, page, pageSize int64) (*CombatPage, error) {
	page, pageSize = normalizePage(page, pageSize)
	skip := (page - 1) * pageSize

	filter := CombatFilter{}
	total, err := s.store.Count(ctx, filter)
	if err != nil {
		log.Printf("Error counting combats: %v", err)
		return nil, err
	}
	combats, err := s.store.FindPage(ctx, filter, skip, pageSize)
	if err != nil {
		log.Printf("Error listing combats: %v", err)
		return nil, err
	}

	return &CombatPage{
		Combats:      combats,
		TotalCombats: total,
		TotalPages:   totalPages(total, pageSize),
		CurrentPage:  page,
		PageSize:     pageSize,
	}, nil
}

// CombatByID returns the expanded combat, or nil when it does not exist
func (s *CombatService) CombatByID(ctx context.Context, id string) (*models.CombatDetail, error) {
	cid, err := parseRef(id)
	if err != nil {
		return nil, err
	}
	return s.store.FindDetailByID(ctx, cid)
}

// UpdateCombatInput holds the updatable fields; nil fields are left alone
type UpdateCombatInput struct {
	Opponent *string
	Gym      *string
	Date     *time.Time
	Status   *string
	IsHidden *bool
}

// Update applies a partial update and returns the raw acknowledgment
func (s *CombatService) Update(ctx context.Context, id string, input UpdateCombatInput) (*UpdateAck, error) {
	cid, err := parseRef(id)
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if input.Opponent != nil {
		oid, err := parseRef(*input.Opponent)
		if err != nil {
			return nil, err
		}
		fields["opponent"] = oid
	}
	if input.Gym != nil {
		gid, err := parseRef(*input.Gym)
		if err != nil {
			return nil, err
		}
		fields["gym"] = gid
	}
	if input.Date != nil {
		fields["date"] = *input.Date
	}
	if input.Status != nil {
		switch *input.Status {
		case models.StatusPending, models.StatusAccepted, models.StatusRejected:
			fields["status"] = *input.Status
		default:
			return nil, ErrInvalidStatus
		}
	}
	if input.IsHidden != nil {
		fields["isHidden"] = *input.IsHidden
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	matched, modified, err := s.store.SetFields(ctx, cid, fields)
	if err != nil {
		return nil, err
	}
	return &UpdateAck{MatchedCount: matched, ModifiedCount: modified}, nil
}

// Delete hard-deletes a combat by id
func (s *CombatService) Delete(ctx context.Context, id string) (*DeleteAck, error) {
	cid, err := parseRef(id)
	if err != nil {
		return nil, err
	}
	deleted, err := s.store.Delete(ctx, cid)
	if err != nil {
		return nil, err
	}
	return &DeleteAck{DeletedCount: deleted}, nil
}

// Boxers returns the [creator, opponent] pair for a combat, expanded.
// A missing combat yields an empty slice, not an error.
func (s *CombatService) Boxers(ctx context.Context, id string) ([]models.User, error) {
	cid, err := parseRef(id)
	if err != nil {
		return nil, err
	}
	detail, err := s.store.FindDetailByID(ctx, cid)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return []models.User{}, nil
	}
	return []models.User{detail.Creator, detail.Opponent}, nil
}

// Hide sets the visibility flag, independent of status
func (s *CombatService) Hide(ctx context.Context, id string, isHidden bool) (*UpdateAck, error) {
	cid, err := parseRef(id)
	if err != nil {
		return nil, err
	}
	matched, modified, err := s.store.SetFields(ctx, cid, bson.M{"isHidden": isHidden})
	if err != nil {
		return nil, err
	}
	return &UpdateAck{MatchedCount: matched, ModifiedCount: modified}, nil
}

// CombatsByGym returns one page of visible combats held at a gym, expanded
func (s *CombatService) CombatsByGym(ctx context.Context, gymID string, page, pageSize int64) (*CombatDetailPage, error) {
	gid, err := parseRef(gymID)
	if err != nil {
		return nil, err
	}
	page, pageSize = normalizePage(page, pageSize)
	skip := (page - 1) * pageSize

	filter := CombatFilter{Gym: &gid, VisibleOnly: true}
	total, err := s.store.Count(ctx, filter)
	if err != nil {
		log.Printf("Error counting combats for gym %s: %v", gymID, err)
		return nil, err
	}
	combats, err := s.store.FindDetailPage(ctx, filter, skip, pageSize)
	if err != nil {
		log.Printf("Error listing combats for gym %s: %v", gymID, err)
		return nil, err
	}

	return &CombatDetailPage{
		Combats:      combats,
		TotalCombats: total,
		TotalPages:   totalPages(total, pageSize),
		CurrentPage:  page,
		PageSize:     pageSize,
	}, nil
}
