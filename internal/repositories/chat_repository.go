package repositories

import (
	"gorm.io/gorm"

	"careercenter_backend/internal/models"
)

type ChatRepository interface {
	Create(message *models.ChatMessage) error
	FindByParticipant(userID string, limit int) ([]models.ChatMessage, error)
}

type ChatRepositoryImpl struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &ChatRepositoryImpl{db: db}
}

func (r *ChatRepositoryImpl) Create(message *models.ChatMessage) error {
	return r.db.Create(message).Error
}

func (r *ChatRepositoryImpl) FindByParticipant(userID string, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var messages []models.ChatMessage
	err := r.db.Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}
