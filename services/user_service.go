package services

import (
	"context"
	"fmt"
	"time"

	"ringside/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is the storage surface for boxers
type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindPage(ctx context.Context, visibleOnly bool, skip, limit int64) ([]models.User, error)
	Count(ctx context.Context, visibleOnly bool) (int64, error)
}

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

type CreateUserInput struct {
	Name   string
	Email  string
	Weight float64
	City   string
}

// UserPage is the pagination envelope for boxer listings
type UserPage struct {
	Users       []models.User `json:"users"`
	TotalUsers  int64         `json:"totalUsers"`
	TotalPages  int64         `json:"totalPages"`
	CurrentPage int64         `json:"currentPage"`
	PageSize    int64         `json:"pageSize"`
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*models.User, error) {
	if input.Name == "" || input.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}
	user := &models.User{
		Name:      input.Name,
		Email:     input.Email,
		Weight:    input.Weight,
		City:      input.City,
		CreatedAt: time.Now(),
	}
	if err := s.store.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UserByID(ctx context.Context, id string) (*models.User, error) {
	uid, err := parseRef(id)
	if err != nil {
		return nil, err
	}
	user, err := s.store.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, page, pageSize int64) (*UserPage, error) {
	page, pageSize = normalizePage(page, pageSize)
	skip := (page - 1) * pageSize

	total, err := s.store.Count(ctx, true)
	if err != nil {
		return nil, err
	}
	users, err := s.store.FindPage(ctx, true, skip, pageSize)
	if err != nil {
		return nil, err
	}

	return &UserPage{
		Users:       users,
		TotalUsers:  total,
		TotalPages:  totalPages(total, pageSize),
		CurrentPage: page,
		PageSize:    pageSize,
	}, nil
}
