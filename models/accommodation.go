package models

// Accommodation is a static catalog entity, seeded once and read-only from
// the application's perspective.
type Accommodation struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	Name          string   `gorm:"not null" json:"name"`
	Location      string   `gorm:"not null" json:"location"`
	Description   string   `gorm:"not null" json:"description"`
	PricePerNight float64  `gorm:"not null" json:"pricePerNight"`
	Image         string   `gorm:"not null" json:"image"`
	Tier          string   `gorm:"not null" json:"tier"` // budget, standard, premium, luxury, ultra-luxury
	Amenities     []string `gorm:"serializer:json;not null" json:"amenities"`
}
