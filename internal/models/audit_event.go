package models

import (
	"time"
)

// AuditEvent is an append-only record of a security-relevant action.
// Rows are never updated or deleted; AdminID is kept even after the
// referenced admin account is removed.
type AuditEvent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	EventType string    `json:"event_type" gorm:"type:varchar(100);not null;index"`
	AdminID   *uint     `json:"admin_id" gorm:"index"`
	IPAddress string    `json:"ip_address" gorm:"type:varchar(45)"`
	UserAgent string    `json:"user_agent" gorm:"type:varchar(500)"`
	Details   string    `json:"details" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
