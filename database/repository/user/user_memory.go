package user

import (
	"time"

	"stellartours/models"
)

// MemoryUserRepo is a map-backed UserRepository for tests. It is not safe
// for concurrent writers.
type MemoryUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *MemoryUserRepo) Create(u *models.User) error {
	u.ID = r.nextID
	r.nextID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *MemoryUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *MemoryUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepo) UpdateLastLogin(id uint, at time.Time) error {
	if u, ok := r.users[id]; ok {
		u.LastLogin = &at
	}
	return nil
}
