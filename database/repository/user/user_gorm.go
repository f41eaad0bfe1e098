package user

import (
	"errors"
	"time"

	"stellartours/database"
	"stellartours/models"

	"gorm.io/gorm"
)

// GormUserRepo is the Postgres-backed implementation of UserRepository.
type GormUserRepo struct {
	DB *gorm.DB
}

func NewGormUserRepo() *GormUserRepo {
	return &GormUserRepo{DB: database.DB}
}

func (r *GormUserRepo) Create(u *models.User) error {
	return r.DB.Create(u).Error
}

func (r *GormUserRepo) GetByID(id uint) (*models.User, error) {
	var u models.User
	err := r.DB.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepo) GetByUsername(username string) (*models.User, error) {
	var u models.User
	err := r.DB.Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepo) UpdateLastLogin(id uint, at time.Time) error {
	return r.DB.Model(&models.User{}).Where("id = ?", id).Update("last_login", at).Error
}
