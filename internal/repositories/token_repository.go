package repositories

import (
	"errors"

	"flexygig/internal/models"

	"gorm.io/gorm"
)

var ErrTokenNotFound = errors.New("verification token not found")

// TokenRepository хранит одноразовые токены (сброс пароля).
// На пользователя действует не более одного токена.
type TokenRepository interface {
	Upsert(db *gorm.DB, token *models.VerificationToken) error
	FindByToken(db *gorm.DB, token string) (*models.VerificationToken, error)
	DeleteByUserID(db *gorm.DB, userID uint) error
	DeleteByToken(db *gorm.DB, token string) error
}

type TokenRepositoryImpl struct{}

func NewTokenRepository() TokenRepository {
	return &TokenRepositoryImpl{}
}

// Upsert удаляет старый токен пользователя и вставляет новый.
func (r *TokenRepositoryImpl) Upsert(db *gorm.DB, token *models.VerificationToken) error {
	if err := db.Where("user_id = ?", token.UserID).Delete(&models.VerificationToken{}).Error; err != nil {
		return err
	}
	return db.Create(token).Error
}

func (r *TokenRepositoryImpl) FindByToken(db *gorm.DB, token string) (*models.VerificationToken, error) {
	var vt models.VerificationToken
	err := db.Where("token = ?", token).First(&vt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &vt, nil
}

func (r *TokenRepositoryImpl) DeleteByUserID(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&models.VerificationToken{}).Error
}

func (r *TokenRepositoryImpl) DeleteByToken(db *gorm.DB, token string) error {
	return db.Where("token = ?", token).Delete(&models.VerificationToken{}).Error
}
