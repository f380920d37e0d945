package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/polystack/polystack/internal/metrics"
	"github.com/polystack/polystack/internal/model"
	"github.com/polystack/polystack/internal/repository"
)

// UserStore is the persistence surface the user service depends on.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	ListUsers(ctx context.Context) ([]*model.User, error)
}

// UserService handles user business logic.
type UserService struct {
	store    UserStore
	validate *validator.Validate
	metrics  metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		store:    store,
		validate: validator.New(),
		metrics:  recorder,
	}
}

// CreateUserInput defines input for creating a user.
type CreateUserInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

// CreateUser validates the input and inserts one user.
// The returned user carries the server-assigned ID and CreatedAt.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, userValidationError(err)
	}

	user := &model.User{
		Name:  input.Name,
		Email: input.Email,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailExists):
			return nil, ErrEmailTaken
		case errors.Is(err, repository.ErrInvalidInput):
			return nil, ErrInvalidInput
		default:
			s.metrics.IncStoreError()
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}

	s.metrics.IncUserCreated()
	return user, nil
}

// ListUsers returns every user in insertion order.
func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		s.metrics.IncStoreError()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.metrics.IncUsersListed()
	return users, nil
}

// userValidationError converts a validator error into the field-specific
// service sentinel.
func userValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if verrs[0].Field() == "Name" {
			return ErrInvalidName
		}
		return ErrInvalidEmail
	}
	return ErrInvalidInput
}
