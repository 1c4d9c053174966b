package dto

import "time"

// SendMessageRequest - отправка сообщения другому пользователю
type SendMessageRequest struct {
	ReceiverID uint   `json:"receiver_id" validate:"required,min=1"`
	Content    string `json:"content" validate:"required,min=1,max=5000"`
}

// MessageResponse - сообщение в ответах API
type MessageResponse struct {
	MessageID  uint      `json:"message_id"`
	SenderID   uint      `json:"sender_id"`
	ReceiverID uint      `json:"receiver_id"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

// ConversationHistoryResponse - переписка с одним собеседником
type ConversationHistoryResponse struct {
	PartnerID uint              `json:"partner_id"`
	Messages  []MessageResponse `json:"messages"`
}

// ConversationPartnersResponse - список собеседников пользователя
type ConversationPartnersResponse struct {
	PartnerIDs []uint `json:"partner_ids"`
}

// LatestMessagesResponse - последние входящие сообщения
type LatestMessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}
