package repositories

import (
	"errors"
	"time"

	"flexygig/internal/models"

	"gorm.io/gorm"
)

var (
	ErrWorkerProfileNotFound = errors.New("worker profile not found")
	ErrDuplicateProfileName  = errors.New("profile name already exists for this user")
)

// WorkerRepository - примитивы над таблицей workers. Методы принимают
// *gorm.DB первым аргументом, чтобы сервис мог передать транзакцию.
// Никто не трогает is_primary напрямую мимо WorkerProfileService.
type WorkerRepository interface {
	Create(db *gorm.DB, profile *models.WorkerProfile) error
	FindByID(db *gorm.DB, profileID uint) (*models.WorkerProfile, error)
	FindOwned(db *gorm.DB, userID, profileID uint) (*models.WorkerProfile, error)
	ListByUserID(db *gorm.DB, userID uint) ([]models.WorkerProfile, error)
	ListAll(db *gorm.DB) ([]models.WorkerProfile, error)
	FindPrimary(db *gorm.DB, userID uint) (*models.WorkerProfile, error)
	FindEarliest(db *gorm.DB, userID uint) (*models.WorkerProfile, error)
	Update(db *gorm.DB, profile *models.WorkerProfile) error
	ClearPrimary(db *gorm.DB, userID uint) error
	MarkPrimary(db *gorm.DB, profileID uint) error
	Delete(db *gorm.DB, profileID uint) error
}

type WorkerRepositoryImpl struct{}

func NewWorkerRepository() WorkerRepository {
	return &WorkerRepositoryImpl{}
}

func (r *WorkerRepositoryImpl) Create(db *gorm.DB, profile *models.WorkerProfile) error {
	if err := db.Create(profile).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateProfileName
		}
		return err
	}
	return nil
}

func (r *WorkerRepositoryImpl) FindByID(db *gorm.DB, profileID uint) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	err := db.First(&profile, "id = ?", profileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *WorkerRepositoryImpl) FindOwned(db *gorm.DB, userID, profileID uint) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	err := db.Where("id = ? AND user_id = ?", profileID, userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// ListByUserID возвращает профили primary-first, далее по времени создания
func (r *WorkerRepositoryImpl) ListByUserID(db *gorm.DB, userID uint) ([]models.WorkerProfile, error) {
	var profiles []models.WorkerProfile
	err := db.Where("user_id = ?", userID).
		Order("is_primary DESC, created_at ASC, id ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *WorkerRepositoryImpl) ListAll(db *gorm.DB) ([]models.WorkerProfile, error) {
	var profiles []models.WorkerProfile
	err := db.Order("id ASC").Find(&profiles).Error
	return profiles, err
}

func (r *WorkerRepositoryImpl) FindPrimary(db *gorm.DB, userID uint) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	err := db.Where("user_id = ? AND is_primary = ?", userID, true).
		Order("id ASC").
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// FindEarliest - кандидат на повышение до primary после удаления:
// самый ранний по created_at, id как детерминированный tiebreak.
func (r *WorkerRepositoryImpl) FindEarliest(db *gorm.DB, userID uint) (*models.WorkerProfile, error) {
	var profile models.WorkerProfile
	err := db.Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *WorkerRepositoryImpl) Update(db *gorm.DB, profile *models.WorkerProfile) error {
	if err := db.Save(profile).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateProfileName
		}
		return err
	}
	return nil
}

func (r *WorkerRepositoryImpl) ClearPrimary(db *gorm.DB, userID uint) error {
	return db.Model(&models.WorkerProfile{}).
		Where("user_id = ? AND is_primary = ?", userID, true).
		Updates(map[string]interface{}{
			"is_primary": false,
			"updated_at": time.Now(),
		}).Error
}

func (r *WorkerRepositoryImpl) MarkPrimary(db *gorm.DB, profileID uint) error {
	result := db.Model(&models.WorkerProfile{}).
		Where("id = ?", profileID).
		Updates(map[string]interface{}{
			"is_primary": true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkerProfileNotFound
	}
	return nil
}

func (r *WorkerRepositoryImpl) Delete(db *gorm.DB, profileID uint) error {
	result := db.Where("id = ?", profileID).Delete(&models.WorkerProfile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWorkerProfileNotFound
	}
	return nil
}
