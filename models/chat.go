package models

import "time"

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatMessage is one turn of a user's advisor conversation. The log is
// append-only per user and keyed by username, like bookings.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"userId"`
	Content   string    `gorm:"not null" json:"content"`
	Role      string    `gorm:"not null" json:"role"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}
