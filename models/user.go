// models/user.go
package models

import "time"

// User represents a registered traveler account.
type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Username       string     `gorm:"uniqueIndex;not null" json:"username"`
	Password       string     `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Email          string     `json:"email,omitempty"`
	FirstName      string     `json:"firstName,omitempty"`
	LastName       string     `json:"lastName,omitempty"`
	PhoneNumber    string     `json:"phoneNumber,omitempty"`
	ProfilePicture string     `json:"profilePicture,omitempty"`
	Role           string     `gorm:"not null;default:user" json:"role"`
	IsVerified     bool       `gorm:"not null;default:false" json:"isVerified"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastLogin      *time.Time `json:"lastLogin,omitempty"`
}
