package services

import (
	"errors"

	"flexygig/internal/models"
	"flexygig/internal/repositories"
	"flexygig/internal/services/dto"
	"flexygig/pkg/apperrors"

	"gorm.io/gorm"
)

// UserService - карточка пользователя и обновление учётных данных.
type UserService interface {
	GetDetails(db *gorm.DB, userID uint) (*dto.UserDetailsResponse, error)
	Update(db *gorm.DB, userID uint, req *dto.UpdateUserRequest) (*dto.UserDetailsResponse, error)
}

type UserServiceImpl struct {
	userRepo     repositories.UserRepository
	workerRepo   repositories.WorkerRepository
	businessRepo repositories.BusinessRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	workerRepo repositories.WorkerRepository,
	businessRepo repositories.BusinessRepository,
) UserService {
	return &UserServiceImpl{
		userRepo:     userRepo,
		workerRepo:   workerRepo,
		businessRepo: businessRepo,
	}
}

// GetDetails собирает карточку: для воркера — primary-профиль,
// для бизнеса — запись Business.
func (s *UserServiceImpl) GetDetails(db *gorm.DB, userID uint) (*dto.UserDetailsResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := userToDetailsDTO(user)

	if user.IsBusiness {
		business, err := s.businessRepo.FindByUserID(db, userID)
		if err != nil && !errors.Is(err, repositories.ErrBusinessNotFound) {
			return nil, apperrors.InternalError(err)
		}
		if business != nil {
			resp.Business = &dto.BusinessResponse{
				ID:                  business.ID,
				BusinessName:        business.BusinessName,
				BusinessDescription: business.BusinessDescription,
			}
		}
		return resp, nil
	}

	primary, err := s.workerRepo.FindPrimary(db, userID)
	if err != nil && !errors.Is(err, repositories.ErrWorkerProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if primary != nil {
		resp.PrimaryProfile = workerProfileToDTO(primary)
	}
	return resp, nil
}

func (s *UserServiceImpl) Update(db *gorm.DB, userID uint, req *dto.UpdateUserRequest) (*dto.UserDetailsResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	user, err := s.userRepo.FindByID(tx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.UserImage != nil {
		user.UserImage = *req.UserImage
	}

	if err := s.userRepo.Update(tx, user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetDetails(db, userID)
}

func userToDetailsDTO(user *models.User) *dto.UserDetailsResponse {
	resp := &dto.UserDetailsResponse{
		ID:          user.ID,
		Email:       user.Email,
		IsBusiness:  user.IsBusiness,
		PhoneNumber: user.PhoneNumber,
		UserImage:   user.UserImage,
		Active:      user.Active,
		CreatedAt:   user.CreatedAt,
	}
	if user.Location != nil {
		resp.Location = &dto.LocationResponse{
			StreetAddress: user.Location.StreetAddress,
			City:          user.Location.City,
			Province:      user.Location.Province,
			PostalCode:    user.Location.PostalCode,
		}
	}
	return resp
}
