package accommodation

import (
	"stellartours/database"
	"stellartours/models"

	"gorm.io/gorm"
)

// GormAccommodationRepo is the Postgres-backed implementation of
// AccommodationRepository.
type GormAccommodationRepo struct {
	DB *gorm.DB
}

func NewGormAccommodationRepo() *GormAccommodationRepo {
	return &GormAccommodationRepo{DB: database.DB}
}

func (r *GormAccommodationRepo) List() ([]models.Accommodation, error) {
	var accommodations []models.Accommodation
	err := r.DB.Order("id ASC").Find(&accommodations).Error
	if err != nil {
		return nil, err
	}
	return accommodations, nil
}
