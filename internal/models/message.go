package models

import (
	"time"
)

type MessageStatus string

const (
	MessageNew      MessageStatus = "new"
	MessageRead     MessageStatus = "read"
	MessageReplied  MessageStatus = "replied"
	MessageArchived MessageStatus = "archived"
)

// ValidMessageStatus reports whether s names a known message status.
func ValidMessageStatus(s string) bool {
	switch MessageStatus(s) {
	case MessageNew, MessageRead, MessageReplied, MessageArchived:
		return true
	}
	return false
}

// Message is a contact form submission.
type Message struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	Name      string        `json:"name" gorm:"type:varchar(255);not null"`
	Email     string        `json:"email" gorm:"type:varchar(255);not null"`
	Phone     string        `json:"phone" gorm:"type:varchar(20)"`
	Company   string        `json:"company" gorm:"type:varchar(255)"`
	Subject   string        `json:"subject" gorm:"type:varchar(255)"`
	Body      string        `json:"message" gorm:"column:message;type:text;not null"`
	Status    MessageStatus `json:"status" gorm:"type:varchar(50);default:'new';not null"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
