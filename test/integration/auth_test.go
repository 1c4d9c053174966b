package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"flexygig/internal/models"
	"flexygig/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterVerifyLoginFlow - полный жизненный цикл: заявка ->
// подтверждение email по токену -> логин -> /auth/me
func TestRegisterVerifyLoginFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := fmt.Sprintf("flow_%d@test.com", time.Now().UnixNano())

	registerBody := map[string]interface{}{
		"email":        email,
		"password":     "super_password123",
		"is_business":  false,
		"first_name":   "Дана",
		"last_name":    "Т.",
		"profile_name": "Barista",
		"city":         "Halifax",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/auth/pending-register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, email)
	t.Logf("РЕГИСТРАЦИЯ: Успешно. Ответ: %s", regBodyStr)

	// До верификации логин запрещен
	loginBody := map[string]interface{}{"email": email, "password": "super_password123"}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", loginBody)
	assert.Equal(t, http.StatusForbidden, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "not activated")

	// Токен достаем из staging-таблицы (в проде он приходит письмом)
	var pending models.PendingUser
	require.NoError(t, ts.DB.Where("email = ?", email).First(&pending).Error)
	require.Len(t, pending.Token, 64)

	verRes, verBodyStr := ts.SendRequest(t, "GET", "/api/auth/verify/"+pending.Token, "", nil)
	assert.Equal(t, http.StatusOK, verRes.StatusCode)
	assert.Contains(t, verBodyStr, "token")
	t.Logf("ВЕРИФИКАЦИЯ: Успешно. Ответ: %s", verBodyStr)

	// Заявка удалена, пользователь активен
	err := ts.DB.Where("email = ?", email).First(&models.PendingUser{}).Error
	assert.Error(t, err)

	var user models.User
	require.NoError(t, ts.DB.Where("email = ?", email).First(&user).Error)
	assert.True(t, user.Active)

	// Создан primary-профиль с именем из заявки
	var profile models.WorkerProfile
	require.NoError(t, ts.DB.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.True(t, profile.IsPrimary)
	assert.Equal(t, "Barista", profile.ProfileName)

	token := helpers.LoginUser(t, ts, email, "super_password123")

	meRes, meBodyStr := ts.SendRequest(t, "GET", "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, meRes.StatusCode)
	assert.Contains(t, meBodyStr, email)
}

// TestRegister_DuplicatePending - повторная заявка с тем же email
func TestRegister_DuplicatePending(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := fmt.Sprintf("dup_%d@test.com", time.Now().UnixNano())

	body := map[string]interface{}{
		"email":        email,
		"password":     "password_is_long_enough",
		"first_name":   "User",
		"last_name":    "One",
		"profile_name": "First",
		"city":         "Astana",
	}

	res, _ := ts.SendRequest(t, "POST", "/api/auth/pending-register", "", body)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/pending-register", "", body)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "pending verification")
}

// TestRegister_ExistingEmail - email уже занят активным пользователем
func TestRegister_ExistingEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := fmt.Sprintf("taken_%d@test.com", time.Now().UnixNano())
	helpers.CreateUser(t, ts.DB, email, "password123", false)

	body := map[string]interface{}{
		"email":        email,
		"password":     "another_password123",
		"first_name":   "User",
		"last_name":    "Two",
		"profile_name": "Second",
		"city":         "Almaty",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/pending-register", "", body)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "already registered")
}

// TestLogin_BadPassword - неверный пароль
func TestLogin_BadPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := fmt.Sprintf("badpass_%d@test.com", time.Now().UnixNano())
	helpers.CreateUser(t, ts.DB, email, "correct-password", false)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "WRONG-password",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", loginBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid credentials")
}

// TestVerify_UnknownToken - мусорный токен верификации
func TestVerify_UnknownToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	res, bodyStr := ts.SendRequest(t, "GET", "/api/auth/verify/deadbeef", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid or expired token")
}

// TestPasswordReset_Flow - запрос сброса и установка нового пароля
func TestPasswordReset_Flow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	email := fmt.Sprintf("reset_%d@test.com", time.Now().UnixNano())
	user := helpers.CreateUser(t, ts.DB, email, "old-password-123", false)

	res, _ := ts.SendRequest(t, "POST", "/api/auth/initiate-password-reset", "", map[string]interface{}{"email": email})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var token models.VerificationToken
	require.NoError(t, ts.DB.Where("user_id = ?", user.ID).First(&token).Error)

	// несовпадающее подтверждение отклоняется, токен остаётся живым
	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/reset-password", "", map[string]interface{}{
		"token":            token.Token,
		"new_password":     "new-password-456",
		"confirm_password": "new-password-457",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Passwords do not match")

	res, _ = ts.SendRequest(t, "POST", "/api/auth/reset-password", "", map[string]interface{}{
		"token":            token.Token,
		"new_password":     "new-password-456",
		"confirm_password": "new-password-456",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Старый пароль больше не подходит, новый работает
	res, _ = ts.SendRequest(t, "POST", "/api/auth/login", "", map[string]interface{}{
		"email": email, "password": "old-password-123",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	helpers.LoginUser(t, ts, email, "new-password-456")
}
