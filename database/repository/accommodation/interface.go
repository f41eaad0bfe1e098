package accommodation

import "stellartours/models"

// AccommodationRepository reads the static accommodation catalog. Filtering
// happens in the service layer so the Postgres and in-memory variants share
// one filter implementation.
type AccommodationRepository interface {
	List() ([]models.Accommodation, error)
}
