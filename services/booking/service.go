package booking

import (
	"time"

	bookingRepo "stellartours/database/repository/booking"
	"stellartours/models"
	"stellartours/utils"

	"go.uber.org/zap"
)

// BookingService manages the booking lifecycle. The userID argument on
// every method is the caller's username taken from the session; ownership
// of single-resource operations is enforced against it.
type BookingService interface {
	CreateBooking(userID string, in models.CreateBookingInput) (*models.Booking, error)
	GetBooking(userID string, id uint) (*models.Booking, error)
	ListBookings(userID string) ([]models.Booking, error)
	UpdateBooking(userID string, id uint, in models.UpdateBookingInput) (*models.Booking, error)
	DeleteBooking(userID string, id uint) error
}

type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}

// CreateBooking prices and persists a new booking. The price is derived
// once here; status is whatever the caller set, defaulting to "confirmed".
// Status is free text with no transition validation.
func (s *DefaultBookingService) CreateBooking(userID string, in models.CreateBookingInput) (*models.Booking, error) {
	status := in.Status
	if status == "" {
		status = "confirmed"
	}

	b := &models.Booking{
		Destination:       in.Destination,
		DepartureDate:     in.DepartureDate,
		ReturnDate:        in.ReturnDate,
		TravelClass:       in.TravelClass,
		NumberOfTravelers: in.NumberOfTravelers,
		Status:            status,
		Price:             CalculatePrice(in.Destination, in.TravelClass, in.NumberOfTravelers),
		UserID:            userID,
	}

	if err := s.Repo.Create(b); err != nil {
		utils.GetLogger().Error("CreateBooking: failed to persist booking", zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (s *DefaultBookingService) GetBooking(userID string, id uint) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	if b.UserID != userID {
		return nil, ErrAccessDenied
	}
	return b, nil
}

func (s *DefaultBookingService) ListBookings(userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(userID)
}

// UpdateBooking applies a partial field replacement and re-stamps the
// updated-time. The price changes only when explicitly supplied.
func (s *DefaultBookingService) UpdateBooking(userID string, id uint, in models.UpdateBookingInput) (*models.Booking, error) {
	b, err := s.GetBooking(userID, id)
	if err != nil {
		return nil, err
	}

	if in.Destination != nil {
		b.Destination = *in.Destination
	}
	if in.DepartureDate != nil {
		b.DepartureDate = *in.DepartureDate
	}
	if in.ReturnDate != nil {
		b.ReturnDate = in.ReturnDate
	}
	if in.TravelClass != nil {
		b.TravelClass = *in.TravelClass
	}
	if in.NumberOfTravelers != nil {
		b.NumberOfTravelers = *in.NumberOfTravelers
	}
	if in.Status != nil {
		b.Status = *in.Status
	}
	if in.Price != nil {
		b.Price = *in.Price
	}
	b.UpdatedAt = time.Now()

	if err := s.Repo.Update(b); err != nil {
		utils.GetLogger().Error("UpdateBooking: failed to persist booking", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (s *DefaultBookingService) DeleteBooking(userID string, id uint) error {
	if _, err := s.GetBooking(userID, id); err != nil {
		return err
	}
	deleted, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
