package chat

import "stellartours/models"

// ChatRepository abstracts persistence for the per-user advisor
// conversation log.
type ChatRepository interface {
	Create(m *models.ChatMessage) error
	ListByUser(userID string) ([]models.ChatMessage, error)
	DeleteByUser(userID string) error
}
