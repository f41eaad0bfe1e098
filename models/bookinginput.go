package models

import "time"

// CreateBookingInput is the payload for POST /api/bookings. Price is not
// accepted from the client; it is always computed server-side at creation.
type CreateBookingInput struct {
	Destination       string     `json:"destination" binding:"required"`
	DepartureDate     time.Time  `json:"departureDate" binding:"required"`
	ReturnDate        *time.Time `json:"returnDate"`
	TravelClass       string     `json:"travelClass" binding:"required"`
	NumberOfTravelers int        `json:"numberOfTravelers" binding:"required,min=1,max=10"`
	Status            string     `json:"status"`
}

// UpdateBookingInput is the payload for PATCH /api/bookings/:id. Nil fields
// are left untouched; the price is never recomputed implicitly.
type UpdateBookingInput struct {
	Destination       *string    `json:"destination"`
	DepartureDate     *time.Time `json:"departureDate"`
	ReturnDate        *time.Time `json:"returnDate"`
	TravelClass       *string    `json:"travelClass"`
	NumberOfTravelers *int       `json:"numberOfTravelers" binding:"omitempty,min=1,max=10"`
	Status            *string    `json:"status"`
	Price             *float64   `json:"price"`
}
