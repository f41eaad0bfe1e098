package models

import "time"

// Booking represents a trip reservation.
//
// UserID holds the owning user's username, not the numeric user ID. Every
// ownership check compares against the session username. Renaming a user
// would orphan their bookings.
type Booking struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Destination       string     `gorm:"not null" json:"destination"`
	DepartureDate     time.Time  `gorm:"not null" json:"departureDate"`
	ReturnDate        *time.Time `json:"returnDate"`
	TravelClass       string     `gorm:"not null" json:"travelClass"`
	NumberOfTravelers int        `gorm:"not null;default:1" json:"numberOfTravelers"`
	Status            string     `gorm:"not null;default:confirmed" json:"status"`
	Price             float64    `gorm:"not null" json:"price"`
	UserID            string     `gorm:"not null;index" json:"userId"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
