package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"flexygig/internal/services/dto"
	"flexygig/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWorkerProfileLifecycle - создание второго профиля, смена primary,
// удаление primary с продвижением самого старого
func TestWorkerProfileLifecycle(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user, first := helpers.CreateAndLoginWorker(t, ts)
	userPath := fmt.Sprintf("/api/worker-profiles/%d", user.ID)

	// Второй профиль без make_primary не трогает текущий primary
	res, bodyStr := ts.SendRequest(t, "POST", "/api/worker-profiles", token, map[string]interface{}{
		"first_name":   "Test",
		"last_name":    "Worker",
		"profile_name": "Bartender",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var second dto.WorkerProfileResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &second))
	assert.False(t, second.IsPrimary)

	res, bodyStr = ts.SendRequest(t, "GET", userPath+"/primary", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, first.ProfileName)

	// Переключаем primary на второй профиль
	res, _ = ts.SendRequest(t, "POST", fmt.Sprintf("%s/primary/%d", userPath, second.ID), token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr = ts.SendRequest(t, "GET", userPath+"/primary", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Bartender")

	// Удаляем новый primary - продвигается оставшийся (самый старый)
	res, bodyStr = ts.SendRequest(t, "DELETE", fmt.Sprintf("%s/%d", userPath, second.ID), token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"wasPrimary":true`)

	res, bodyStr = ts.SendRequest(t, "GET", userPath+"/primary", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, first.ProfileName)
}

// TestWorkerProfile_DuplicateName - имя профиля уникально в рамках пользователя
func TestWorkerProfile_DuplicateName(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _, first := helpers.CreateAndLoginWorker(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/worker-profiles", token, map[string]interface{}{
		"first_name":   "Test",
		"last_name":    "Worker",
		"profile_name": first.ProfileName,
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "already exists")
}

// TestWorkerProfile_ForeignUserForbidden - чужие профили менять нельзя
func TestWorkerProfile_ForeignUserForbidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _, _ := helpers.CreateAndLoginWorker(t, ts)
	_, other, otherProfile := helpers.CreateAndLoginWorker(t, ts)

	res, _ := ts.SendRequest(t, "DELETE",
		fmt.Sprintf("/api/worker-profiles/%d/%d", other.ID, otherProfile.ID), token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestWorkerProfile_PublicListOrder - публичный список: primary первым
func TestWorkerProfile_PublicListOrder(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user, _ := helpers.CreateAndLoginWorker(t, ts)

	res, _ := ts.SendRequest(t, "POST", "/api/worker-profiles", token, map[string]interface{}{
		"first_name":   "Test",
		"last_name":    "Worker",
		"profile_name": "Mover",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, "GET", fmt.Sprintf("/api/worker-profiles/%d", user.ID), "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var list dto.WorkerProfileListResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	require.Equal(t, 2, list.Total)
	assert.True(t, list.Profiles[0].IsPrimary)
	assert.False(t, list.Profiles[1].IsPrimary)
}
