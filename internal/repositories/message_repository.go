package repositories

import (
	"flexygig/internal/models"

	"gorm.io/gorm"
)

// MessageRepository - хранение и выборка сообщений между пользователями.
type MessageRepository interface {
	Create(db *gorm.DB, message *models.Message) error
	History(db *gorm.DB, userA, userB uint) ([]models.Message, error)
	Partners(db *gorm.DB, userID uint) ([]uint, error)
	LatestForReceiver(db *gorm.DB, receiverID uint, limit int) ([]models.Message, error)
}

type MessageRepositoryImpl struct{}

func NewMessageRepository() MessageRepository {
	return &MessageRepositoryImpl{}
}

func (r *MessageRepositoryImpl) Create(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

// History возвращает переписку пары пользователей в хронологическом порядке.
func (r *MessageRepositoryImpl) History(db *gorm.DB, userA, userB uint) ([]models.Message, error) {
	var messages []models.Message
	err := db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}

// Partners возвращает уникальные id собеседников пользователя.
func (r *MessageRepositoryImpl) Partners(db *gorm.DB, userID uint) ([]uint, error) {
	var partners []uint
	err := db.Raw(`
		SELECT DISTINCT partner_id FROM (
			SELECT receiver_id AS partner_id FROM messages WHERE sender_id = ?
			UNION
			SELECT sender_id AS partner_id FROM messages WHERE receiver_id = ?
		) AS conv
		ORDER BY partner_id ASC`, userID, userID).
		Scan(&partners).Error
	return partners, err
}

func (r *MessageRepositoryImpl) LatestForReceiver(db *gorm.DB, receiverID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := db.
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}
