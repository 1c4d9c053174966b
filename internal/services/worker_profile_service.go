package services

import (
	"errors"

	"flexygig/internal/models"
	"flexygig/internal/repositories"
	"flexygig/internal/services/dto"
	"flexygig/pkg/apperrors"

	"gorm.io/gorm"
)

// WorkerProfileService управляет профилями пользователя и гарантирует,
// что у пользователя с профилями ровно один помечен как primary.
type WorkerProfileService interface {
	CreateProfile(db *gorm.DB, userID uint, req *dto.CreateWorkerProfileRequest) (*dto.WorkerProfileResponse, error)
	GetProfile(db *gorm.DB, userID, profileID uint) (*dto.WorkerProfileResponse, error)
	ListProfiles(db *gorm.DB, userID uint) (*dto.WorkerProfileListResponse, error)
	UpdateProfile(db *gorm.DB, userID, profileID uint, req *dto.UpdateWorkerProfileRequest) (*dto.WorkerProfileResponse, error)
	SetPrimary(db *gorm.DB, userID, profileID uint) (*dto.WorkerProfileResponse, error)
	GetPrimary(db *gorm.DB, userID uint) (*dto.WorkerProfileResponse, error)
	DeleteProfile(db *gorm.DB, userID, profileID uint) (wasPrimary bool, err error)
}

type WorkerProfileServiceImpl struct {
	workerRepo repositories.WorkerRepository
	tagRepo    repositories.TagRepository
}

func NewWorkerProfileService(
	workerRepo repositories.WorkerRepository,
	tagRepo repositories.TagRepository,
) WorkerProfileService {
	return &WorkerProfileServiceImpl{
		workerRepo: workerRepo,
		tagRepo:    tagRepo,
	}
}

// CreateProfile создаёт профиль. Первый профиль пользователя всегда
// становится primary; последующие — только по явному запросу.
func (s *WorkerProfileServiceImpl) CreateProfile(db *gorm.DB, userID uint, req *dto.CreateWorkerProfileRequest) (*dto.WorkerProfileResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	existing, err := s.workerRepo.ListByUserID(tx, userID)
	if err != nil {
		return nil, handleWorkerError(err)
	}

	profile := &models.WorkerProfile{
		UserID:      userID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		ProfileName: req.ProfileName,
		RoleName:    req.RoleName,
	}
	if err := s.workerRepo.Create(tx, profile); err != nil {
		return nil, handleWorkerError(err)
	}

	if len(existing) == 0 || req.MakePrimary {
		if err := s.workerRepo.ClearPrimary(tx, userID); err != nil {
			return nil, handleWorkerError(err)
		}
		if err := s.workerRepo.MarkPrimary(tx, profile.ID); err != nil {
			return nil, handleWorkerError(err)
		}
		profile.IsPrimary = true
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	return workerProfileToDTO(profile), nil
}

func (s *WorkerProfileServiceImpl) GetProfile(db *gorm.DB, userID, profileID uint) (*dto.WorkerProfileResponse, error) {
	profile, err := s.workerRepo.FindOwned(db, userID, profileID)
	if err != nil {
		return nil, handleWorkerError(err)
	}
	return workerProfileToDTO(profile), nil
}

func (s *WorkerProfileServiceImpl) ListProfiles(db *gorm.DB, userID uint) (*dto.WorkerProfileListResponse, error) {
	profiles, err := s.workerRepo.ListByUserID(db, userID)
	if err != nil {
		return nil, handleWorkerError(err)
	}

	resp := &dto.WorkerProfileListResponse{
		Profiles: make([]dto.WorkerProfileResponse, 0, len(profiles)),
		Total:    len(profiles),
	}
	for i := range profiles {
		resp.Profiles = append(resp.Profiles, *workerProfileToDTO(&profiles[i]))
	}
	return resp, nil
}

func (s *WorkerProfileServiceImpl) UpdateProfile(db *gorm.DB, userID, profileID uint, req *dto.UpdateWorkerProfileRequest) (*dto.WorkerProfileResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	profile, err := s.workerRepo.FindOwned(tx, userID, profileID)
	if err != nil {
		return nil, handleWorkerError(err)
	}

	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.ProfileName != nil {
		profile.ProfileName = *req.ProfileName
	}
	if req.RoleName != nil {
		profile.RoleName = req.RoleName
	}

	if err := s.workerRepo.Update(tx, profile); err != nil {
		return nil, handleWorkerError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	return workerProfileToDTO(profile), nil
}

// SetPrimary переключает primary-флаг на указанный профиль пользователя.
// Повторный вызов на уже primary-профиле безвреден.
func (s *WorkerProfileServiceImpl) SetPrimary(db *gorm.DB, userID, profileID uint) (*dto.WorkerProfileResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	profile, err := s.workerRepo.FindOwned(tx, userID, profileID)
	if err != nil {
		return nil, handleWorkerError(err)
	}

	if err := s.workerRepo.ClearPrimary(tx, userID); err != nil {
		return nil, handleWorkerError(err)
	}
	if err := s.workerRepo.MarkPrimary(tx, profile.ID); err != nil {
		return nil, handleWorkerError(err)
	}
	profile.IsPrimary = true

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}
	return workerProfileToDTO(profile), nil
}

func (s *WorkerProfileServiceImpl) GetPrimary(db *gorm.DB, userID uint) (*dto.WorkerProfileResponse, error) {
	profile, err := s.workerRepo.FindPrimary(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrWorkerProfileNotFound) {
			return nil, apperrors.ErrPrimaryProfileNotFound
		}
		return nil, handleWorkerError(err)
	}
	return workerProfileToDTO(profile), nil
}

// DeleteProfile удаляет профиль вместе с его тегами и сообщает, был ли он
// primary на момент удаления (флаг читается в той же транзакции). Если
// удалён primary-профиль, primary становится самый ранний из оставшихся.
func (s *WorkerProfileServiceImpl) DeleteProfile(db *gorm.DB, userID, profileID uint) (bool, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return false, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	profile, err := s.workerRepo.FindOwned(tx, userID, profileID)
	if err != nil {
		return false, handleWorkerError(err)
	}
	wasPrimary := profile.IsPrimary

	for _, kind := range []models.TagKind{models.TagKindSkill, models.TagKindTrait, models.TagKindExperience} {
		if err := s.tagRepo.ClearAll(tx, kind, profile.ID); err != nil {
			return false, handleWorkerError(err)
		}
	}

	if err := s.workerRepo.Delete(tx, profile.ID); err != nil {
		return false, handleWorkerError(err)
	}

	if wasPrimary {
		next, err := s.workerRepo.FindEarliest(tx, userID)
		if err != nil && !errors.Is(err, repositories.ErrWorkerProfileNotFound) {
			return false, handleWorkerError(err)
		}
		if next != nil {
			if err := s.workerRepo.MarkPrimary(tx, next.ID); err != nil {
				return false, handleWorkerError(err)
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return false, apperrors.InternalError(err)
	}
	return wasPrimary, nil
}

func workerProfileToDTO(p *models.WorkerProfile) *dto.WorkerProfileResponse {
	return &dto.WorkerProfileResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		ProfileName: p.ProfileName,
		RoleName:    p.RoleName,
		IsPrimary:   p.IsPrimary,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func handleWorkerError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrWorkerProfileNotFound):
		return apperrors.ErrWorkerProfileNotFound
	case errors.Is(err, repositories.ErrDuplicateProfileName):
		return apperrors.ErrDuplicateProfileName
	default:
		return apperrors.InternalError(err)
	}
}
