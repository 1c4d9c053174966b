package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"flexygig/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает активного пользователя напрямую в БД,
// хешируя пароль так же, как это делает регистрация.
func CreateUser(t *testing.T, db *gorm.DB, email, password string, isBusiness bool) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Не удалось хешировать пароль: %v", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		IsBusiness:   isBusiness,
		Active:       true,
	}
	require.NoError(t, db.Create(user).Error, "Создание тестового пользователя не должно вызывать ошибку")
	return user
}

// LoginUser логинит через API и возвращает JWT
func LoginUser(t *testing.T, ts *TestServer, email, password string) string {
	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	err := json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	return loginResponse.Token
}

// CreateAndLoginWorker создает воркера с primary-профилем (уникальный email)
func CreateAndLoginWorker(t *testing.T, ts *TestServer) (string, *models.User, *models.WorkerProfile) {
	email := fmt.Sprintf("worker_%d@test.com", time.Now().UnixNano())
	user := CreateUser(t, ts.DB, email, "password123", false)

	profile := &models.WorkerProfile{
		UserID:      user.ID,
		FirstName:   "Test",
		LastName:    "Worker",
		ProfileName: "Default",
		IsPrimary:   true,
	}
	require.NoError(t, ts.DB.Create(profile).Error, "Не удалось создать профиль воркера")

	token := LoginUser(t, ts, email, "password123")
	return token, user, profile
}

// CreateAndLoginBusiness создает бизнес-аккаунт (уникальный email)
func CreateAndLoginBusiness(t *testing.T, ts *TestServer) (string, *models.User, *models.Business) {
	email := fmt.Sprintf("business_%d@test.com", time.Now().UnixNano())
	user := CreateUser(t, ts.DB, email, "password123", true)

	business := &models.Business{
		UserID:       user.ID,
		BusinessName: "Test Company Inc.",
	}
	require.NoError(t, ts.DB.Create(business).Error, "Не удалось создать бизнес-запись")

	token := LoginUser(t, ts, email, "password123")
	return token, user, business
}
