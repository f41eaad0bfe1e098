package accommodation

import "stellartours/models"

// MemoryAccommodationRepo serves a fixed catalog slice for tests.
type MemoryAccommodationRepo struct {
	Catalog []models.Accommodation
}

func NewMemoryAccommodationRepo(catalog []models.Accommodation) *MemoryAccommodationRepo {
	return &MemoryAccommodationRepo{Catalog: catalog}
}

func (r *MemoryAccommodationRepo) List() ([]models.Accommodation, error) {
	out := make([]models.Accommodation, len(r.Catalog))
	copy(out, r.Catalog)
	return out, nil
}
