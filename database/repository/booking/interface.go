package booking

import "stellartours/models"

// BookingRepository abstracts persistence for booking records. GetByID
// returns (nil, nil) when no record exists; Delete reports whether a record
// was removed.
type BookingRepository interface {
	Create(b *models.Booking) error
	GetByID(id uint) (*models.Booking, error)
	ListByUser(userID string) ([]models.Booking, error)
	Update(b *models.Booking) error
	Delete(id uint) (bool, error)
}
