package database

import (
	"log"

	"stellartours/models"

	"gorm.io/gorm"
)

// accommodationSeed is the static accommodation catalog, inserted once.
var accommodationSeed = []models.Accommodation{
	{
		Name:          "Orbital Luxury Suite",
		Location:      "Earth Orbit, 400km",
		Description:   "Experience weightlessness in our premium orbital suites with panoramic Earth views.",
		PricePerNight: 35000,
		Image:         "https://images.unsplash.com/photo-1517495306984-f84210f9daa8?auto=format&fit=crop&w=800&q=80",
		Tier:          "premium",
		Amenities:     []string{"Panoramic Views", "Zero-G Spa", "Gourmet Dining"},
	},
	{
		Name:          "Lunar Dome Residence",
		Location:      "Lunar Surface, Sea of Tranquility",
		Description:   "Luxury domes with Earth views and private lunar terrace access.",
		PricePerNight: 75000,
		Image:         "https://images.unsplash.com/photo-1454789548928-9efd52dc4031?auto=format&fit=crop&w=800&q=80",
		Tier:          "luxury",
		Amenities:     []string{"Private Terrace", "Earth View", "Lunar Rover"},
	},
	{
		Name:          "Mars Habitat Suite",
		Location:      "Martian Colony, Olympus Mons",
		Description:   "Experience the red planet in comfort with artificial gravity and hydroponic gardens.",
		PricePerNight: 25000,
		Image:         "https://images.unsplash.com/photo-1444703686981-a3abbc4d4fe3?auto=format&fit=crop&w=800&q=80",
		Tier:          "standard",
		Amenities:     []string{"Artificial Gravity", "Hydroponic Garden", "VR Suite"},
	},
	{
		Name:          "Zero-G Capsule",
		Location:      "Low Earth Orbit Station",
		Description:   "Affordable orbital accommodation with all essential amenities.",
		PricePerNight: 8500,
		Image:         "https://images.unsplash.com/photo-1446776811953-b23d57bd21aa?auto=format&fit=crop&w=800&q=80",
		Tier:          "budget",
		Amenities:     []string{"Compact Design", "Shared Facilities", "Basic Amenities"},
	},
	{
		Name:          "Saturn Ring View Suite",
		Location:      "Saturn Orbital Station",
		Description:   "Our most luxurious offering with unparalleled views of Saturn's rings.",
		PricePerNight: 125000,
		Image:         "https://images.unsplash.com/photo-1540198163009-7afda7da2945?auto=format&fit=crop&w=800&q=80",
		Tier:          "ultra-luxury",
		Amenities:     []string{"360° Ring Views", "Private Chef", "Luxury Spa"},
	},
	{
		Name:          "International Space Hub",
		Location:      "Earth Orbit, Equatorial",
		Description:   "Modern space station accommodations with scientific facilities access.",
		PricePerNight: 18000,
		Image:         "https://images.unsplash.com/photo-1465101162946-4377e57745c3?auto=format&fit=crop&w=800&q=80",
		Tier:          "standard",
		Amenities:     []string{"Zero-G Gym", "Science Lab Access", "Observatory"},
	},
}

// SeedAccommodations inserts the accommodation catalog if the table is empty.
func SeedAccommodations(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Accommodation{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := db.Create(&accommodationSeed).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d accommodations", len(accommodationSeed))
	return nil
}
