package accommodation

import (
	"strings"

	accommodationRepo "stellartours/database/repository/accommodation"
	"stellartours/models"
)

// Price-range buckets for catalog filtering, in credits per night.
const (
	PriceRangeBudget   = "budget"   // < 10000
	PriceRangeStandard = "standard" // 10000 - 25000
	PriceRangeLuxury   = "luxury"   // 25000 - 50000
	PriceRangeUltra    = "ultra"    // > 50000
)

// AccommodationService serves the filtered accommodation catalog.
type AccommodationService interface {
	GetFilteredAccommodations(location, amenity, priceRange string) ([]models.Accommodation, error)
}

type DefaultAccommodationService struct {
	Repo accommodationRepo.AccommodationRepository
}

// GetFilteredAccommodations returns the intersection of the location
// substring, amenity substring, and price-bucket filters. Empty or "all"
// values disable the corresponding filter. No pagination.
func (s *DefaultAccommodationService) GetFilteredAccommodations(location, amenity, priceRange string) ([]models.Accommodation, error) {
	all, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	return FilterAccommodations(all, location, amenity, priceRange), nil
}

// FilterAccommodations applies the catalog filters to the given rows. It is
// shared by the Postgres and in-memory paths so both behave identically.
func FilterAccommodations(rows []models.Accommodation, location, amenity, priceRange string) []models.Accommodation {
	filtered := rows

	if location != "" && location != "all" {
		var out []models.Accommodation
		for _, acc := range filtered {
			if strings.Contains(strings.ToLower(acc.Location), strings.ToLower(location)) {
				out = append(out, acc)
			}
		}
		filtered = out
	}

	if amenity != "" && amenity != "all" {
		var out []models.Accommodation
		for _, acc := range filtered {
			for _, a := range acc.Amenities {
				if strings.Contains(strings.ToLower(a), strings.ToLower(amenity)) {
					out = append(out, acc)
					break
				}
			}
		}
		filtered = out
	}

	if priceRange != "" && priceRange != "all" {
		var out []models.Accommodation
		for _, acc := range filtered {
			if matchesPriceRange(acc.PricePerNight, priceRange) {
				out = append(out, acc)
			}
		}
		filtered = out
	}

	return filtered
}

func matchesPriceRange(pricePerNight float64, priceRange string) bool {
	switch priceRange {
	case PriceRangeBudget:
		return pricePerNight < 10000
	case PriceRangeStandard:
		return pricePerNight >= 10000 && pricePerNight <= 25000
	case PriceRangeLuxury:
		return pricePerNight > 25000 && pricePerNight <= 50000
	case PriceRangeUltra:
		return pricePerNight > 50000
	default:
		return true
	}
}
