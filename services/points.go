package services

import (
	"context"
	"fmt"

	"github.com/oohyj/pointsync/models"
)

// PointStore is the ledger's persistence surface. Append is used by the
// ledger API only; the check-in award goes through AttendanceStore.Record
// so it stays transactional with the attendance row.
type PointStore interface {
	Append(ctx context.Context, userID uint, amount int, reason string) (*models.PointLedger, error)
	Sum(ctx context.Context, userID uint) (int, error)
	History(ctx context.Context, userID uint, page, size int) ([]models.PointLedger, int64, error)
}

// PointHistory is one page of ledger entries, newest first.
type PointHistory struct {
	UserID     uint                 `json:"user_id"`
	Page       int                  `json:"page"`
	Size       int                  `json:"size"`
	Total      int64                `json:"total"`
	TotalPages int                  `json:"total_pages"`
	Items      []models.PointLedger `json:"items"`
}

// PointService exposes manual ledger operations: credits, debits, totals
// and history.
type PointService struct {
	users UserDirectory
	store PointStore
}

// NewPointService builds the ledger service.
func NewPointService(users UserDirectory, store PointStore) *PointService {
	return &PointService{users: users, store: store}
}

// Append records a ledger entry. Positive amounts credit, negative debit;
// zero is rejected.
func (s *PointService) Append(ctx context.Context, userID uint, amount int, reason string) (*models.PointLedger, error) {
	if amount == 0 {
		return nil, ErrZeroAmount
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	entry, err := s.store.Append(ctx, userID, amount, reason)
	if err != nil {
		return nil, fmt.Errorf("append ledger: %w", err)
	}
	return entry, nil
}

// Total returns the user's running point balance.
func (s *PointService) Total(ctx context.Context, userID uint) (int, error) {
	total, err := s.store.Sum(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("sum ledger: %w", err)
	}
	return total, nil
}

// History returns one page of the user's ledger, newest first.
func (s *PointService) History(ctx context.Context, userID uint, page, size int) (*PointHistory, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	items, total, err := s.store.History(ctx, userID, page, size)
	if err != nil {
		return nil, fmt.Errorf("ledger history: %w", err)
	}
	pages := int((total + int64(size) - 1) / int64(size))
	return &PointHistory{
		UserID:     userID,
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: pages,
		Items:      items,
	}, nil
}
