package user

import (
	"time"

	"stellartours/models"
)

// UserRepository abstracts persistence for user records. Lookups return
// (nil, nil) when no record exists.
type UserRepository interface {
	Create(u *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	UpdateLastLogin(id uint, at time.Time) error
}
