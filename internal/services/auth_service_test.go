package services

import (
	"sync"
	"testing"
	"time"

	"flexygig/internal/auth"
	"flexygig/internal/config"
	"flexygig/internal/email"
	"flexygig/internal/models"
	"flexygig/internal/repositories"
	"flexygig/internal/services/dto"
	"flexygig/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockMailer struct {
	mu   sync.Mutex
	sent []*email.Message
}

func (m *mockMailer) Enqueue(msg *email.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
}

func (m *mockMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func init() {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.FrontendURL = "http://localhost:3000"
	config.AppConfig = cfg
}

func newAuthService(mailer EmailEnqueuer) AuthService {
	return NewAuthService(
		repositories.NewUserRepository(),
		repositories.NewWorkerRepository(),
		repositories.NewBusinessRepository(),
		repositories.NewPendingUserRepository(),
		repositories.NewTokenRepository(),
		repositories.NewTagRepository(),
		mailer,
	)
}

func workerRegisterReq(emailAddr string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:         emailAddr,
		Password:      "s3curePass!",
		FirstName:     "Jane",
		LastName:      "Roe",
		ProfileName:   "Default",
		City:          "Halifax",
		Province:      "NS",
		StreetAddress: "1 Main St",
		PostalCode:    "B3H 0A1",
	}
}

func pendingByEmail(t *testing.T, db *gorm.DB, emailAddr string) *models.PendingUser {
	t.Helper()
	var pending models.PendingUser
	require.NoError(t, db.Where("email = ?", emailAddr).First(&pending).Error)
	return &pending
}

func TestRegister_CreatesPendingAndSendsEmail(t *testing.T) {
	db := newTestDB(t)
	mailer := &mockMailer{}
	svc := newAuthService(mailer)

	resp, err := svc.Register(db, workerRegisterReq("jane@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.Email)

	pending := pendingByEmail(t, db, "jane@example.com")
	assert.Equal(t, models.AccountTypeWorker, pending.AccountType)
	assert.Len(t, pending.Token, 64)
	assert.NotEqual(t, "s3curePass!", pending.PasswordHash)

	require.Equal(t, 1, mailer.count())
	assert.Contains(t, mailer.sent[0].HTML, pending.Token)

	// пользователь еще не создан
	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(&mockMailer{})

	req := workerRegisterReq("jane@example.com")
	req.Password = "short"

	_, err := svc.Register(db, req)
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestRegister_DuplicatePendingRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(&mockMailer{})

	_, err := svc.Register(db, workerRegisterReq("jane@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(db, workerRegisterReq("jane@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrEmailPendingVerification)
}

func TestRegister_ExistingUserRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(&mockMailer{})

	require.NoError(t, db.Create(&models.User{
		Email:        "jane@example.com",
		PasswordHash: "x",
		Active:       true,
	}).Error)

	_, err := svc.Register(db, workerRegisterReq("jane@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestVerifyEmail_PromotesWorkerWithPrimaryProfileAndTags(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(&mockMailer{})

	require.NoError(t, db.Create(&models.Skill{Name: "Bartending"}).Error)
	require.NoError(t, db.Create(&models.Trait{Name: "Punctual"}).Error)

	req := workerRegisterReq("jane@example.com")
	req.Skills = []uint{1}
	req.Traits = []uint{1}
	_, err := svc.Register(db, req)
	require.NoError(t, err)

	token := pendingByEmail(t, db, "jane@example.com").Token

	authResp, err := svc.VerifyEmail(db, token)
	require.NoError(t, err)
	assert.NotEmpty(t, authResp.Token)
	assert.False(t, authResp.IsBusiness)

	var user models.User
	require.NoError(t, db.Preload("Location").Where("email = ?", "jane@example.com").First(&user).Error)
	assert.True(t, user.Active)
	require.NotNil(t, user.Location)
	assert.Equal(t, "Halifax", user.Location.City)

	var profile models.WorkerProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.True(t, profile.IsPrimary)
	assert.Equal(t, "Default", profile.ProfileName)

	var skillJoins, traitJoins int64
	require.NoError(t, db.Model(&models.WorkerSkill{}).Where("workers_id = ?", profile.ID).Count(&skillJoins).Error)
	require.NoError(t, db.Model(&models.WorkerTrait{}).Where("workers_id = ?", profile.ID).Count(&traitJoins).Error)
	assert.EqualValues(t, 1, skillJoins)
	assert.EqualValues(t, 1, traitJoins)

	// заявка удалена, токен погашен
	var pendings int64
	require.NoError(t, db.Model(&models.PendingUser{}).Count(&pendings).Error)
	assert.Zero(t, pendings)
	assert.False(t, svc.ValidateToken(db, token))

	// JWT рабочий
	claims, err := auth.ParseToken(authResp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestVerifyEmail_PromotesBusiness(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(&mockMailer{})

	req := &dto.RegisterRequest{
		Email:               "acme@example.com",
		Password:            "s3curePass!",
		IsBusiness:          true,
		BusinessName:        "Acme Staffing",
		BusinessDescription: "Event staffing",
	}
	_, err := svc.Register(db, req)
	require.NoError(t, err)

	token := pendingByEmail(t, db, "acme@example.com").Token

	authResp, err := svc.VerifyEmail(db, token)
	require.NoError(t, err)
	assert.True(t, authResp.IsBusiness)

	var business models.Business
	require.NoError(t, db.Where("user_id = ?", authResp.UserID).First(&business).Error)
	assert.Equal(t, "Acme Staffing", business.BusinessName)

	var profiles int64
	require.NoError(t, db.Model(&models.WorkerProfile{}).Count(&profiles).Error)
	assert.Zero(t, profiles)
}

func TestVerifyEmail_UnknownToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(&mockMailer{})

	_, err := svc.VerifyEmail(db, "deadbeef")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestResendVerification_RotatesToken(t *testing.T) {
	db := newTestDB(t)
	mailer := &mockMailer{}
	svc := newAuthService(mailer)

	_, err := svc.Register(db, workerRegisterReq("jane@example.com"))
	require.NoError(t, err)
	oldToken := pendingByEmail(t, db, "jane@example.com").Token

	require.NoError(t, svc.ResendVerification(db, "jane@example.com"))

	newToken := pendingByEmail(t, db, "jane@example.com").Token
	assert.NotEqual(t, oldToken, newToken)
	assert.False(t, svc.ValidateToken(db, oldToken))
	assert.True(t, svc.ValidateToken(db, newToken))
	assert.Equal(t, 2, mailer.count())
}

func TestLogin_Success(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(&mockMailer{})

	_, err := svc.Register(db, workerRegisterReq("jane@example.com"))
	require.NoError(t, err)
	token := pendingByEmail(t, db, "jane@example.com").Token
	_, err = svc.VerifyEmail(db, token)
	require.NoError(t, err)

	resp, err := svc.Login(db, &dto.LoginRequest{Email: "jane@example.com", Password: "s3curePass!"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jane@example.com", resp.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(&mockMailer{})

	_, err := svc.Register(db, workerRegisterReq("jane@example.com"))
	require.NoError(t, err)
	token := pendingByEmail(t, db, "jane@example.com").Token
	_, err = svc.VerifyEmail(db, token)
	require.NoError(t, err)

	_, err = svc.Login(db, &dto.LoginRequest{Email: "jane@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_PendingAccountGetsActionableError(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(&mockMailer{})

	_, err := svc.Register(db, workerRegisterReq("jane@example.com"))
	require.NoError(t, err)

	_, err = svc.Login(db, &dto.LoginRequest{Email: "jane@example.com", Password: "s3curePass!"})
	assert.ErrorIs(t, err, apperrors.ErrAccountNotActivated)
}

func TestLogin_UnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(&mockMailer{})

	_, err := svc.Login(db, &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestPasswordReset_FullFlow(t *testing.T) {
	db := newTestDB(t)
	mailer := &mockMailer{}
	svc := newAuthService(mailer)

	_, err := svc.Register(db, workerRegisterReq("jane@example.com"))
	require.NoError(t, err)
	verifyToken := pendingByEmail(t, db, "jane@example.com").Token
	_, err = svc.VerifyEmail(db, verifyToken)
	require.NoError(t, err)

	require.NoError(t, svc.InitiatePasswordReset(db, "jane@example.com"))

	var vt models.VerificationToken
	require.NoError(t, db.First(&vt).Error)
	require.NotNil(t, vt.ExpiresAt)

	require.NoError(t, svc.ResetPassword(db, &dto.PasswordResetConfirm{
		Token:           vt.Token,
		NewPassword:     "brandNewPass1",
		ConfirmPassword: "brandNewPass1",
	}))

	// токен одноразовый
	err = svc.ResetPassword(db, &dto.PasswordResetConfirm{
		Token:           vt.Token,
		NewPassword:     "anotherPass1",
		ConfirmPassword: "anotherPass1",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = svc.Login(db, &dto.LoginRequest{Email: "jane@example.com", Password: "s3curePass!"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	resp, err := svc.Login(db, &dto.LoginRequest{Email: "jane@example.com", Password: "brandNewPass1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestPasswordReset_UnknownEmailSilentlySucceeds(t *testing.T) {
	db := newTestDB(t)
	mailer := &mockMailer{}
	svc := newAuthService(mailer)

	require.NoError(t, svc.InitiatePasswordReset(db, "nobody@example.com"))
	assert.Zero(t, mailer.count())
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(&mockMailer{})

	require.NoError(t, db.Create(&models.User{
		Email:        "jane@example.com",
		PasswordHash: "x",
		Active:       true,
	}).Error)

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, db.Create(&models.VerificationToken{
		UserID:    1,
		Token:     "expired-token",
		ExpiresAt: &expired,
	}).Error)

	err := svc.ResetPassword(db, &dto.PasswordResetConfirm{
		Token:           "expired-token",
		NewPassword:     "brandNewPass1",
		ConfirmPassword: "brandNewPass1",
	})
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestResetPassword_ConfirmationMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(&mockMailer{})

	user := models.User{Email: "jane@example.com", PasswordHash: "old-hash", Active: true}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.VerificationToken{
		UserID: user.ID,
		Token:  "live-token",
	}).Error)

	err := svc.ResetPassword(db, &dto.PasswordResetConfirm{
		Token:           "live-token",
		NewPassword:     "brandNewPass1",
		ConfirmPassword: "brandNewPass2",
	})
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)

	// пароль и токен остались нетронутыми
	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, "old-hash", fresh.PasswordHash)
	assert.NoError(t, db.Where("token = ?", "live-token").First(&models.VerificationToken{}).Error)
}
