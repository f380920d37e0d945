package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/polystack/polystack/internal/metrics"
	"github.com/polystack/polystack/internal/model"
	"github.com/polystack/polystack/internal/repository"
)

// fakeUserStore lets each test script the persistence layer.
type fakeUserStore struct {
	createFn func(ctx context.Context, user *model.User) error
	listFn   func(ctx context.Context) ([]*model.User, error)
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *model.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	panic("unexpected CreateUser")
}

func (f *fakeUserStore) ListUsers(ctx context.Context) ([]*model.User, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	panic("unexpected ListUsers")
}

func TestUserService_CreateUser(t *testing.T) {
	store := &fakeUserStore{
		createFn: func(ctx context.Context, user *model.User) error {
			user.ID = 6
			user.CreatedAt = time.Now()
			return nil
		},
	}
	recorder := metrics.NewInMemory()
	svc := NewUserService(store, recorder)

	user, err := svc.CreateUser(context.Background(), CreateUserInput{
		Name:  "Dana Scully",
		Email: "dana@example.com",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if user.ID != 6 {
		t.Errorf("expected server-assigned id 6, got %d", user.ID)
	}
	if user.CreatedAt.IsZero() {
		t.Error("expected server-assigned CreatedAt")
	}
	if recorder.Snapshot().UsersCreated != 1 {
		t.Error("expected users_created counter to increment")
	}
}

func TestUserService_CreateUser_Validation(t *testing.T) {
	// Store must never be reached on validation failure.
	svc := NewUserService(&fakeUserStore{}, nil)

	tests := []struct {
		name    string
		input   CreateUserInput
		wantErr error
	}{
		{
			name:    "missing name",
			input:   CreateUserInput{Email: "a@example.com"},
			wantErr: ErrInvalidName,
		},
		{
			name:    "missing email",
			input:   CreateUserInput{Name: "A"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "malformed email",
			input:   CreateUserInput{Name: "A", Email: "not-an-email"},
			wantErr: ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	store := &fakeUserStore{
		createFn: func(ctx context.Context, user *model.User) error {
			return repository.ErrEmailExists
		},
	}
	svc := NewUserService(store, nil)

	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		Name:  "A",
		Email: "taken@example.com",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_CreateUser_StoreDown(t *testing.T) {
	store := &fakeUserStore{
		createFn: func(ctx context.Context, user *model.User) error {
			return errors.New("dial tcp: connection refused")
		},
	}
	recorder := metrics.NewInMemory()
	svc := NewUserService(store, recorder)

	_, err := svc.CreateUser(context.Background(), CreateUserInput{
		Name:  "A",
		Email: "a@example.com",
	})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
	if recorder.Snapshot().StoreErrors != 1 {
		t.Error("expected store_errors counter to increment")
	}
}

func TestUserService_ListUsers(t *testing.T) {
	seeded := []*model.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
	}
	store := &fakeUserStore{
		listFn: func(ctx context.Context) ([]*model.User, error) {
			return seeded, nil
		},
	}
	recorder := metrics.NewInMemory()
	svc := NewUserService(store, recorder)

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}

	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
	if recorder.Snapshot().UsersListed != 1 {
		t.Error("expected users_listed counter to increment")
	}
}

func TestUserService_ListUsers_StoreDown(t *testing.T) {
	store := &fakeUserStore{
		listFn: func(ctx context.Context) ([]*model.User, error) {
			return nil, errors.New("connection reset by peer")
		},
	}
	svc := NewUserService(store, nil)

	_, err := svc.ListUsers(context.Background())
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
	if err != nil && errors.Is(err, ErrEmailTaken) {
		t.Error("store failure must not map to a conflict")
	}
}
