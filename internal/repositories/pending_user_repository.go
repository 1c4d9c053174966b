package repositories

import (
	"errors"

	"flexygig/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPendingUserNotFound = errors.New("pending registration not found")
	ErrPendingUserExists   = errors.New("pending registration already exists for this email")
)

// PendingUserRepository хранит заявки на регистрацию до подтверждения email.
type PendingUserRepository interface {
	Create(db *gorm.DB, pending *models.PendingUser) error
	FindByToken(db *gorm.DB, token string) (*models.PendingUser, error)
	FindByEmail(db *gorm.DB, email string) (*models.PendingUser, error)
	UpdateToken(db *gorm.DB, id uint, token string) error
	DeleteByToken(db *gorm.DB, token string) error
	DeleteByEmail(db *gorm.DB, email string) error
}

type PendingUserRepositoryImpl struct{}

func NewPendingUserRepository() PendingUserRepository {
	return &PendingUserRepositoryImpl{}
}

func (r *PendingUserRepositoryImpl) Create(db *gorm.DB, pending *models.PendingUser) error {
	if err := db.Create(pending).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrPendingUserExists
		}
		return err
	}
	return nil
}

func (r *PendingUserRepositoryImpl) FindByToken(db *gorm.DB, token string) (*models.PendingUser, error) {
	var pending models.PendingUser
	err := db.Where("token = ?", token).First(&pending).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPendingUserNotFound
		}
		return nil, err
	}
	return &pending, nil
}

func (r *PendingUserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.PendingUser, error) {
	var pending models.PendingUser
	err := db.Where("email = ?", email).First(&pending).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPendingUserNotFound
		}
		return nil, err
	}
	return &pending, nil
}

func (r *PendingUserRepositoryImpl) UpdateToken(db *gorm.DB, id uint, token string) error {
	result := db.Model(&models.PendingUser{}).
		Where("id = ?", id).
		Update("token", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPendingUserNotFound
	}
	return nil
}

func (r *PendingUserRepositoryImpl) DeleteByToken(db *gorm.DB, token string) error {
	return db.Where("token = ?", token).Delete(&models.PendingUser{}).Error
}

func (r *PendingUserRepositoryImpl) DeleteByEmail(db *gorm.DB, email string) error {
	return db.Where("email = ?", email).Delete(&models.PendingUser{}).Error
}
