package chat

import (
	"sort"
	"time"

	"stellartours/models"
)

// MemoryChatRepo is a map-backed ChatRepository for tests. It is not safe
// for concurrent writers.
type MemoryChatRepo struct {
	messages map[uint]*models.ChatMessage
	nextID   uint
}

func NewMemoryChatRepo() *MemoryChatRepo {
	return &MemoryChatRepo{messages: make(map[uint]*models.ChatMessage), nextID: 1}
}

func (r *MemoryChatRepo) Create(m *models.ChatMessage) error {
	m.ID = r.nextID
	r.nextID++
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	cp := *m
	r.messages[m.ID] = &cp
	return nil
}

func (r *MemoryChatRepo) ListByUser(userID string) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, m := range r.messages {
		if m.UserID == userID {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID < out[j].ID
		}
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (r *MemoryChatRepo) DeleteByUser(userID string) error {
	for id, m := range r.messages {
		if m.UserID == userID {
			delete(r.messages, id)
		}
	}
	return nil
}
