package stores

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/oohyj/pointsync/models"
	"github.com/oohyj/pointsync/services"
)

// UserStore is the GORM-backed account directory.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates the store.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts the account, mapping the email unique index to ErrEmailTaken.
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return services.ErrEmailTaken
		}
		return err
	}
	return nil
}

// FindByID returns the user or services.ErrUserNotFound.
func (s *UserStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns the user with that email or services.ErrUserNotFound.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail reports whether an account with that email exists.
func (s *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete soft-deletes the account. Unknown ids are a no-op.
func (s *UserStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.User{}, id).Error
}
