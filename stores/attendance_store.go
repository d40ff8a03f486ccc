package stores

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/oohyj/pointsync/models"
)

// AttendanceStore is the GORM-backed durable check-in log.
type AttendanceStore struct {
	db *gorm.DB
}

// NewAttendanceStore creates the store.
func NewAttendanceStore(db *gorm.DB) *AttendanceStore {
	return &AttendanceStore{db: db}
}

// Record inserts the attendance row and its point award in one
// transaction, so a day's first check-in either lands both rows or
// neither. A duplicate on uq_user_day means another request already
// recorded the day: the transaction rolls back, no award is written, and
// the caller gets created=false.
func (s *AttendanceStore) Record(ctx context.Context, userID uint, day models.Date, points int, reason string) (bool, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.AttendanceLog{UserID: userID, AttendDate: day}).Error; err != nil {
			return err
		}
		return tx.Create(&models.PointLedger{UserID: userID, Amount: points, Reason: reason}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, fmt.Errorf("insert attendance: %w", err)
	}
	return true, nil
}

// Exists reports whether the user has an attendance row for that day.
// Served by the uq_user_day index.
func (s *AttendanceStore) Exists(ctx context.Context, userID uint, day models.Date) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.AttendanceLog{}).
		Where("user_id = ? AND attend_date = ?", userID, day).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DatesBetween returns the user's attended dates in [from, to], ascending.
func (s *AttendanceStore) DatesBetween(ctx context.Context, userID uint, from, to models.Date) ([]models.Date, error) {
	var dates []models.Date
	err := s.db.WithContext(ctx).
		Model(&models.AttendanceLog{}).
		Where("user_id = ? AND attend_date BETWEEN ? AND ?", userID, from, to).
		Order("attend_date").
		Pluck("attend_date", &dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}
