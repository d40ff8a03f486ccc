package models

import "time"

// AttendanceLog records one user's check-in on one calendar day.
// The uq_user_day unique index is the source of truth for "already checked
// in today": concurrent inserts race on it, and the loser is absorbed.
type AttendanceLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:uq_user_day" json:"user_id"`
	AttendDate Date      `gorm:"type:date;not null;uniqueIndex:uq_user_day" json:"attend_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName keeps the original singular table name.
func (AttendanceLog) TableName() string { return "attendance_log" }
