package models

import "time"

// VerificationToken используется и для подтверждения email, и для сброса пароля.
// У пользователя не более одного активного токена (upsert при повторной выдаче);
// токен удаляется после успешного использования.
type VerificationToken struct {
	BaseModel
	UserID    uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Token     string     `gorm:"uniqueIndex;not null" json:"token"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
