package chat

import (
	"stellartours/database"
	"stellartours/models"

	"gorm.io/gorm"
)

// GormChatRepo is the Postgres-backed implementation of ChatRepository.
type GormChatRepo struct {
	DB *gorm.DB
}

func NewGormChatRepo() *GormChatRepo {
	return &GormChatRepo{DB: database.DB}
}

func (r *GormChatRepo) Create(m *models.ChatMessage) error {
	return r.DB.Create(m).Error
}

func (r *GormChatRepo) ListByUser(userID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.DB.Where("user_id = ?", userID).Order("timestamp ASC").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *GormChatRepo) DeleteByUser(userID string) error {
	return r.DB.Where("user_id = ?", userID).Delete(&models.ChatMessage{}).Error
}
