package services

import (
	"context"
	"fmt"
	"time"

	"ringside/models"
	"ringside/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// GymStore is the storage surface the gym service depends on
type GymStore interface {
	Insert(ctx context.Context, gym *models.Gym) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Gym, error)
	FindByEmail(ctx context.Context, email string) (*models.Gym, error)
	FindPage(ctx context.Context, visibleOnly bool, skip, limit int64) ([]models.Gym, error)
	Count(ctx context.Context, visibleOnly bool) (int64, error)
	SetFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (matched, modified int64, err error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// TokenConfig holds what the gym service needs to mint tokens
type TokenConfig struct {
	Secret               string
	AccessExpiryMinutes  int
	RefreshExpiryMinutes int
}

type GymService struct {
	store  GymStore
	tokens TokenConfig
}

func NewGymService(store GymStore, tokens TokenConfig) *GymService {
	return &GymService{store: store, tokens: tokens}
}

type CreateGymInput struct {
	Name     string
	Place    string
	Price    float64
	Email    string
	Phone    string
	Password string
}

type UpdateGymInput struct {
	Name     *string
	Place    *string
	Price    *float64
	Email    *string
	Phone    *string
	Password *string
}

// GymPage is the pagination envelope for gym listings
type GymPage struct {
	Gyms        []models.Gym `json:"gyms"`
	TotalGyms   int64        `json:"totalGyms"`
	TotalPages  int64        `json:"totalPages"`
	CurrentPage int64        `json:"currentPage"`
	PageSize    int64        `json:"pageSize"`
}

// TokenPair is returned on login; Refresh rotates only the access token
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// Create registers a gym, hashing its password before storage
func (s *GymService) Create(ctx context.Context, input CreateGymInput) (*models.Gym, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}

	existing, err := s.store.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: a gym with this email already exists", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	gym := &models.Gym{
		Name:      input.Name,
		Place:     input.Place,
		Price:     input.Price,
		Email:     input.Email,
		Phone:     input.Phone,
		Password:  string(hash),
		IsHidden:  false,
		CreatedAt: time.Now(),
	}
	if err := s.store.Insert(ctx, gym); err != nil {
		return nil, err
	}
	return gym, nil
}

// List returns one page of visible gyms
func (s *GymService) List(ctx context.Context, page, pageSize int64) (*GymPage, error) {
	page, pageSize = normalizePage(page, pageSize)
	skip := (page - 1) * pageSize

	total, err := s.store.Count(ctx, true)
	if err != nil {
		return nil, err
	}
	gyms, err := s.store.FindPage(ctx, true, skip, pageSize)
	if err != nil {
		return nil, err
	}

	return &GymPage{
		Gyms:        gyms,
		TotalGyms:   total,
		TotalPages:  totalPages(total, pageSize),
		CurrentPage: page,
		PageSize:    pageSize,
	}, nil
}

// GymByID returns a gym or ErrGymNotFound
func (s *GymService) GymByID(ctx context.Context, id string) (*models.Gym, error) {
	gid, err := parseRef(id)
	if err != nil {
		return nil, err
	}
	gym, err := s.store.FindByID(ctx, gid)
	if err != nil {
		return nil, err
	}
	if gym == nil {
		return nil, ErrGymNotFound
	}
	return gym, nil
}

// Update applies a partial update; a new password is re-hashed
func (s *GymService) Update(ctx context.Context, id string, input UpdateGymInput) (*UpdateAck, error) {
	gid, err := parseRef(id)
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Place != nil {
		fields["place"] = *input.Place
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hash)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}

	matched, modified, err := s.store.SetFields(ctx, gid, fields)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrGymNotFound
	}
	return &UpdateAck{MatchedCount: matched, ModifiedCount: modified}, nil
}

// Delete removes a gym by id
func (s *GymService) Delete(ctx context.Context, id string) (*DeleteAck, error) {
	gid, err := parseRef(id)
	if err != nil {
		return nil, err
	}
	deleted, err := s.store.Delete(ctx, gid)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, ErrGymNotFound
	}
	return &DeleteAck{DeletedCount: deleted}, nil
}

// Hide toggles the gym's visibility flag
func (s *GymService) Hide(ctx context.Context, id string, isHidden bool) (*UpdateAck, error) {
	gid, err := parseRef(id)
	if err != nil {
		return nil, err
	}
	matched, modified, err := s.store.SetFields(ctx, gid, bson.M{"isHidden": isHidden})
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrGymNotFound
	}
	return &UpdateAck{MatchedCount: matched, ModifiedCount: modified}, nil
}

// Login checks the credentials and issues an access/refresh token pair
func (s *GymService) Login(ctx context.Context, email, password string) (*models.Gym, *TokenPair, error) {
	gym, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if gym == nil {
		return nil, nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(gym.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	access, err := utils.GenerateToken(gym.ID.Hex(), utils.TokenTypeAccess, s.tokens.Secret, s.tokens.AccessExpiryMinutes)
	if err != nil {
		return nil, nil, err
	}
	refresh, err := utils.GenerateToken(gym.ID.Hex(), utils.TokenTypeRefresh, s.tokens.Secret, s.tokens.RefreshExpiryMinutes)
	if err != nil {
		return nil, nil, err
	}
	return gym, &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh validates a refresh token and mints a new access token
func (s *GymService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	subject, tokenType, err := utils.ParseToken(refreshToken, s.tokens.Secret)
	if err != nil || tokenType != utils.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}

	gid, err := parseRef(subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	gym, err := s.store.FindByID(ctx, gid)
	if err != nil {
		return nil, err
	}
	if gym == nil {
		return nil, ErrInvalidToken
	}

	access, err := utils.GenerateToken(subject, utils.TokenTypeAccess, s.tokens.Secret, s.tokens.AccessExpiryMinutes)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access}, nil
}

// Current resolves the authenticated gym from its token subject
func (s *GymService) Current(ctx context.Context, subjectID string) (*models.Gym, error) {
	return s.GymByID(ctx, subjectID)
}
