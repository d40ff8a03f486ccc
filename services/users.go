package services

import (
	"context"
	"fmt"

	"github.com/oohyj/pointsync/models"
)

// UserStore persists accounts. Create must surface ErrEmailTaken when the
// email unique index rejects the row.
type UserStore interface {
	UserDirectory
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, id uint) error
}

// UserService handles sign-up and account lookups.
type UserService struct {
	store UserStore
}

// NewUserService builds the user service.
func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// SignUp registers a new account. The pre-check gives a friendly error on
// the common path; the unique index on email is the backstop under races.
func (s *UserService) SignUp(ctx context.Context, name, email string) (*models.User, error) {
	taken, err := s.store.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}
	user := &models.User{Name: name, Email: email}
	if err := s.store.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get returns the user or ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	return s.store.FindByID(ctx, id)
}

// FindByEmail returns the user with that email or ErrUserNotFound.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.store.FindByEmail(ctx, email)
}

// Delete removes the account. Deleting an unknown id is not an error.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.store.Delete(ctx, id)
}
