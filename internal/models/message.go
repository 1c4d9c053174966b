package models

import "time"

// Message - сообщение между двумя пользователями. Append-only.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"message_id"`
	SenderID   uint      `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	Content    string    `gorm:"not null" json:"content"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"timestamp"`
}
