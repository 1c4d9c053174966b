package repositories

import (
	"errors"

	"flexygig/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBusinessNotFound      = errors.New("business not found")
	ErrBusinessAlreadyExists = errors.New("business already exists for this user")
)

type BusinessRepository interface {
	Create(db *gorm.DB, business *models.Business) error
	FindByUserID(db *gorm.DB, userID uint) (*models.Business, error)
}

type BusinessRepositoryImpl struct{}

func NewBusinessRepository() BusinessRepository {
	return &BusinessRepositoryImpl{}
}

func (r *BusinessRepositoryImpl) Create(db *gorm.DB, business *models.Business) error {
	if err := db.Create(business).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrBusinessAlreadyExists
		}
		return err
	}
	return nil
}

func (r *BusinessRepositoryImpl) FindByUserID(db *gorm.DB, userID uint) (*models.Business, error) {
	var business models.Business
	err := db.Where("user_id = ?", userID).First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return &business, nil
}
