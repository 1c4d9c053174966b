package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"flexygig/internal/auth"
	"flexygig/internal/config"
	"flexygig/internal/email"
	"flexygig/internal/models"
	"flexygig/internal/repositories"
	"flexygig/internal/services/dto"
	"flexygig/pkg/apperrors"

	"gorm.io/gorm"
)

const resetTokenTTL = time.Hour

// EmailEnqueuer - асинхронная очередь писем (workers.Mailer в продакшене).
type EmailEnqueuer interface {
	Enqueue(msg *email.Message)
}

// AuthService - регистрация с подтверждением email, вход, сброс пароля.
type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	VerifyEmail(db *gorm.DB, token string) (*dto.AuthResponse, error)
	ValidateToken(db *gorm.DB, token string) bool
	ResendVerification(db *gorm.DB, emailAddr string) error
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	InitiatePasswordReset(db *gorm.DB, emailAddr string) error
	ResetPassword(db *gorm.DB, req *dto.PasswordResetConfirm) error
}

type AuthServiceImpl struct {
	userRepo     repositories.UserRepository
	workerRepo   repositories.WorkerRepository
	businessRepo repositories.BusinessRepository
	pendingRepo  repositories.PendingUserRepository
	tokenRepo    repositories.TokenRepository
	tagRepo      repositories.TagRepository
	mailer       EmailEnqueuer
}

func NewAuthService(
	userRepo repositories.UserRepository,
	workerRepo repositories.WorkerRepository,
	businessRepo repositories.BusinessRepository,
	pendingRepo repositories.PendingUserRepository,
	tokenRepo repositories.TokenRepository,
	tagRepo repositories.TagRepository,
	mailer EmailEnqueuer,
) AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		workerRepo:   workerRepo,
		businessRepo: businessRepo,
		pendingRepo:  pendingRepo,
		tokenRepo:    tokenRepo,
		tagRepo:      tagRepo,
		mailer:       mailer,
	}
}

// Register ставит заявку в pending_users и шлёт письмо подтверждения.
// Письмо уходит асинхронно уже после коммита.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	if _, err := s.userRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.pendingRepo.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrEmailPendingVerification
	} else if !errors.Is(err, repositories.ErrPendingUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	token, err := generateSecureToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	accountType := models.AccountTypeWorker
	if req.IsBusiness {
		accountType = models.AccountTypeBusiness
	}

	pending := &models.PendingUser{
		Email:        req.Email,
		PasswordHash: hash,
		AccountType:  accountType,

		FirstName:   req.FirstName,
		LastName:    req.LastName,
		ProfileName: req.ProfileName,
		RoleName:    req.RoleName,

		BusinessName:        req.BusinessName,
		BusinessDescription: req.BusinessDescription,

		StreetAddress: req.StreetAddress,
		City:          req.City,
		Province:      req.Province,
		PostalCode:    req.PostalCode,

		PhoneNumber: req.PhoneNumber,
		Photo:       req.Photo,

		Token: token,
	}
	pending.SetSkillIDs(req.Skills)
	pending.SetTraitIDs(req.Traits)
	pending.SetExperienceIDs(req.Experiences)

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.pendingRepo.Create(tx, pending); err != nil {
		if errors.Is(err, repositories.ErrPendingUserExists) {
			return nil, apperrors.ErrEmailPendingVerification
		}
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	s.mailer.Enqueue(email.NewVerificationMessage(pending.Email, cfg.FrontendURL, token))

	return &dto.RegisterResponse{
		Email:   pending.Email,
		Message: "Registration accepted. Please check your email to verify your account.",
	}, nil
}

// VerifyEmail превращает pending-заявку в пользователя. Worker-заявка
// получает адрес и primary-профиль с выбранными тегами, business-заявка -
// запись Business. Всё в одной транзакции вместе с удалением заявки.
func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, token string) (*dto.AuthResponse, error) {
	pending, err := s.pendingRepo.FindByToken(db, token)
	if err != nil {
		if errors.Is(err, repositories.ErrPendingUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	user := &models.User{
		Email:        pending.Email,
		PasswordHash: pending.PasswordHash,
		IsBusiness:   pending.AccountType == models.AccountTypeBusiness,
		PhoneNumber:  pending.PhoneNumber,
		UserImage:    pending.Photo,
		Active:       true,
	}

	if !user.IsBusiness && pending.City != "" {
		location := &models.Location{
			StreetAddress: pending.StreetAddress,
			City:          pending.City,
			Province:      pending.Province,
			PostalCode:    pending.PostalCode,
		}
		if err := s.userRepo.CreateLocation(tx, location); err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.LocationID = &location.ID
	}

	if err := s.userRepo.Create(tx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if user.IsBusiness {
		business := &models.Business{
			UserID:              user.ID,
			BusinessName:        pending.BusinessName,
			BusinessDescription: pending.BusinessDescription,
		}
		if err := s.businessRepo.Create(tx, business); err != nil {
			return nil, apperrors.InternalError(err)
		}
	} else {
		profileName := pending.ProfileName
		if profileName == "" {
			profileName = "Default"
		}
		profile := &models.WorkerProfile{
			UserID:      user.ID,
			FirstName:   pending.FirstName,
			LastName:    pending.LastName,
			ProfileName: profileName,
			RoleName:    pending.RoleName,
			IsPrimary:   true,
		}
		if err := s.workerRepo.Create(tx, profile); err != nil {
			return nil, apperrors.InternalError(err)
		}

		tagSets := []struct {
			kind models.TagKind
			ids  []uint
		}{
			{models.TagKindSkill, pending.SkillIDs()},
			{models.TagKindTrait, pending.TraitIDs()},
			{models.TagKindExperience, pending.ExperienceIDs()},
		}
		for _, set := range tagSets {
			for _, tagID := range set.ids {
				if err := s.tagRepo.Add(tx, set.kind, profile.ID, tagID); err != nil &&
					!errors.Is(err, repositories.ErrDuplicateTagAssociation) {
					return nil, apperrors.InternalError(err)
				}
			}
		}
	}

	if err := s.pendingRepo.DeleteByToken(tx, token); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	jwtToken, err := auth.GenerateToken(user.ID, user.IsBusiness)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token:      jwtToken,
		UserID:     user.ID,
		Email:      user.Email,
		IsBusiness: user.IsBusiness,
	}, nil
}

// ValidateToken отвечает, существует ли ещё pending-заявка с таким токеном.
func (s *AuthServiceImpl) ValidateToken(db *gorm.DB, token string) bool {
	_, err := s.pendingRepo.FindByToken(db, token)
	return err == nil
}

// ResendVerification выпускает новый токен для pending-заявки и шлёт письмо заново.
func (s *AuthServiceImpl) ResendVerification(db *gorm.DB, emailAddr string) error {
	pending, err := s.pendingRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrPendingUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	token, err := generateSecureToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.pendingRepo.UpdateToken(tx, pending.ID, token); err != nil {
		return apperrors.InternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	s.mailer.Enqueue(email.NewVerificationMessage(pending.Email, cfg.FrontendURL, token))
	return nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// незавершённая регистрация даёт понятную подсказку вместо
			// неразличимого "неверные данные"
			if _, pErr := s.pendingRepo.FindByEmail(db, req.Email); pErr == nil {
				return nil, apperrors.ErrAccountNotActivated
			}
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, apperrors.ErrAccountNotActivated
	}

	jwtToken, err := auth.GenerateToken(user.ID, user.IsBusiness)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token:      jwtToken,
		UserID:     user.ID,
		Email:      user.Email,
		IsBusiness: user.IsBusiness,
	}, nil
}

// InitiatePasswordReset выдаёт токен сброса и шлёт письмо. Для неизвестного
// email отвечает успехом, не раскрывая, зарегистрирован ли адрес.
func (s *AuthServiceImpl) InitiatePasswordReset(db *gorm.DB, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(db, emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	token, err := generateSecureToken()
	if err != nil {
		return apperrors.InternalError(err)
	}
	expiresAt := time.Now().Add(resetTokenTTL)

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	vt := &models.VerificationToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: &expiresAt,
	}
	if err := s.tokenRepo.Upsert(tx, vt); err != nil {
		return apperrors.InternalError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	cfg := config.GetConfig()
	s.mailer.Enqueue(email.NewPasswordResetMessage(user.Email, cfg.FrontendURL, token))
	return nil
}

// ResetPassword меняет пароль по действующему токену и гасит токен.
func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, req *dto.PasswordResetConfirm) error {
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	vt, err := s.tokenRepo.FindByToken(db, req.Token)
	if err != nil {
		if errors.Is(err, repositories.ErrTokenNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}
	if vt.ExpiresAt != nil && time.Now().After(*vt.ExpiresAt) {
		_ = s.tokenRepo.DeleteByToken(db, req.Token)
		return apperrors.ErrTokenExpired
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.userRepo.UpdatePassword(tx, vt.UserID, hash); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.tokenRepo.DeleteByToken(tx, req.Token); err != nil {
		return apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func generateSecureToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
