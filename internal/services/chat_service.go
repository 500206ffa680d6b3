package services

import (
	"careercenter_backend/internal/models"
	"careercenter_backend/internal/repositories"
	"careercenter_backend/internal/services/dto"
	"careercenter_backend/pkg/apperrors"
	"gorm.io/gorm"
)

type ChatService interface {
	Send(callerID string, req *dto.CreateChatMessageRequest) (*models.ChatMessage, error)
	List(userID string, limit int) ([]models.ChatMessage, error)
}

type ChatServiceImpl struct {
	db       *gorm.DB
	chatRepo repositories.ChatRepository
}

func NewChatService(db *gorm.DB, chatRepo repositories.ChatRepository) ChatService {
	return &ChatServiceImpl{db: db, chatRepo: chatRepo}
}

func (s *ChatServiceImpl) Send(callerID string, req *dto.CreateChatMessageRequest) (*models.ChatMessage, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}
	if req.SenderID != callerID {
		return nil, apperrors.ErrNotResourceOwner
	}

	message := &models.ChatMessage{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Message:    req.Message,
		ChatType:   req.ChatType,
	}
	if err := s.chatRepo.Create(message); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return message, nil
}

func (s *ChatServiceImpl) List(userID string, limit int) ([]models.ChatMessage, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	messages, err := s.chatRepo.FindByParticipant(userID, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}
	return messages, nil
}
