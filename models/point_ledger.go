package models

import "time"

// Ledger reasons used by the service itself. Callers of the ledger API may
// supply free-form reasons up to the column size.
const (
	ReasonDailyCheckIn = "daily check-in"
)

// PointLedger is an append-only ledger entry. Positive amounts credit
// points, negative amounts debit them; a user's balance is the sum.
type PointLedger struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Amount    int       `gorm:"not null" json:"amount"`
	Reason    string    `gorm:"size:50;not null" json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the original singular table name.
func (PointLedger) TableName() string { return "point_ledger" }
