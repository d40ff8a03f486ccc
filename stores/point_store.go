package stores

import (
	"context"

	"gorm.io/gorm"

	"github.com/oohyj/pointsync/models"
)

// PointStore is the GORM-backed point ledger.
type PointStore struct {
	db *gorm.DB
}

// NewPointStore creates the store.
func NewPointStore(db *gorm.DB) *PointStore {
	return &PointStore{db: db}
}

// Append writes one ledger entry.
func (s *PointStore) Append(ctx context.Context, userID uint, amount int, reason string) (*models.PointLedger, error) {
	entry := &models.PointLedger{UserID: userID, Amount: amount, Reason: reason}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// Sum returns the user's balance; zero for a user with no entries.
func (s *PointStore) Sum(ctx context.Context, userID uint) (int, error) {
	var total int
	err := s.db.WithContext(ctx).
		Model(&models.PointLedger{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount),0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// History returns one page of entries, newest first, plus the overall count.
func (s *PointStore) History(ctx context.Context, userID uint, page, size int) ([]models.PointLedger, int64, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&models.PointLedger{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var items []models.PointLedger
	err = s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Offset(page * size).
		Limit(size).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
