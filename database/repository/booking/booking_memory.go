package booking

import (
	"sort"
	"time"

	"stellartours/models"
)

// MemoryBookingRepo is a map-backed BookingRepository for tests. It is not
// safe for concurrent writers.
type MemoryBookingRepo struct {
	bookings map[uint]*models.Booking
	nextID   uint
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{bookings: make(map[uint]*models.Booking), nextID: 1}
}

func (r *MemoryBookingRepo) Create(b *models.Booking) error {
	b.ID = r.nextID
	r.nextID++
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *MemoryBookingRepo) GetByID(id uint) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *MemoryBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryBookingRepo) Update(b *models.Booking) error {
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *MemoryBookingRepo) Delete(id uint) (bool, error) {
	if _, ok := r.bookings[id]; !ok {
		return false, nil
	}
	delete(r.bookings, id)
	return true, nil
}
