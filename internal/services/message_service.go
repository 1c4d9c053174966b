package services

import (
	"errors"

	"flexygig/internal/models"
	"flexygig/internal/repositories"
	"flexygig/internal/services/dto"
	"flexygig/pkg/apperrors"

	"gorm.io/gorm"
)

const latestMessagesLimit = 4

// MessageService - простая переписка между пользователями, append-only.
type MessageService interface {
	Send(db *gorm.DB, senderID uint, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	History(db *gorm.DB, userID, partnerID uint) (*dto.ConversationHistoryResponse, error)
	Partners(db *gorm.DB, userID uint) (*dto.ConversationPartnersResponse, error)
	Latest(db *gorm.DB, userID uint) (*dto.LatestMessagesResponse, error)
}

type MessageServiceImpl struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
}

func NewMessageService(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository) MessageService {
	return &MessageServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

func (s *MessageServiceImpl) Send(db *gorm.DB, senderID uint, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if senderID == req.ReceiverID {
		return nil, apperrors.NewBadRequestError("Cannot send a message to yourself")
	}
	if _, err := s.userRepo.FindByID(db, req.ReceiverID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}
	if err := s.messageRepo.Create(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return messageToDTO(message), nil
}

func (s *MessageServiceImpl) History(db *gorm.DB, userID, partnerID uint) (*dto.ConversationHistoryResponse, error) {
	messages, err := s.messageRepo.History(db, userID, partnerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ConversationHistoryResponse{
		PartnerID: partnerID,
		Messages:  make([]dto.MessageResponse, 0, len(messages)),
	}
	for i := range messages {
		resp.Messages = append(resp.Messages, *messageToDTO(&messages[i]))
	}
	return resp, nil
}

func (s *MessageServiceImpl) Partners(db *gorm.DB, userID uint) (*dto.ConversationPartnersResponse, error) {
	partners, err := s.messageRepo.Partners(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if partners == nil {
		partners = []uint{}
	}
	return &dto.ConversationPartnersResponse{PartnerIDs: partners}, nil
}

func (s *MessageServiceImpl) Latest(db *gorm.DB, userID uint) (*dto.LatestMessagesResponse, error) {
	messages, err := s.messageRepo.LatestForReceiver(db, userID, latestMessagesLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(messages) == 0 {
		return nil, apperrors.ErrNoMessagesFound
	}

	resp := &dto.LatestMessagesResponse{
		Messages: make([]dto.MessageResponse, 0, len(messages)),
	}
	for i := range messages {
		resp.Messages = append(resp.Messages, *messageToDTO(&messages[i]))
	}
	return resp, nil
}

func messageToDTO(m *models.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		MessageID:  m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		Timestamp:  m.CreatedAt,
	}
}
