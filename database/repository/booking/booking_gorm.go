package booking

import (
	"errors"

	"stellartours/database"
	"stellartours/models"

	"gorm.io/gorm"
)

// GormBookingRepo is the Postgres-backed implementation of BookingRepository.
type GormBookingRepo struct {
	DB *gorm.DB
}

func NewGormBookingRepo() *GormBookingRepo {
	return &GormBookingRepo{DB: database.DB}
}

func (r *GormBookingRepo) Create(b *models.Booking) error {
	return r.DB.Create(b).Error
}

func (r *GormBookingRepo) GetByID(id uint) (*models.Booking, error) {
	var b models.Booking
	err := r.DB.First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormBookingRepo) Update(b *models.Booking) error {
	return r.DB.Save(b).Error
}

func (r *GormBookingRepo) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&models.Booking{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
