package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"flexygig/internal/auth"
	"flexygig/internal/config"
	"flexygig/internal/middleware"
	"flexygig/internal/models"
	"flexygig/internal/repositories"
	"flexygig/internal/services"
	"flexygig/internal/services/dto"
	"flexygig/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.WorkerProfile{},
		&models.Skill{},
		&models.Trait{},
		&models.Experience{},
		&models.WorkerSkill{},
		&models.WorkerTrait{},
		&models.WorkerExperience{},
	))

	workerRepo := repositories.NewWorkerRepository()
	tagRepo := repositories.NewTagRepository()
	profileService := services.NewWorkerProfileService(workerRepo, tagRepo)

	base := NewBaseHandler(validator.New())
	handler := NewWorkerProfileHandler(base, profileService)

	router := gin.New()
	router.Use(middleware.DBMiddleware(db))
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	return router, db
}

func bearerFor(t *testing.T, userID uint) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, false)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateProfileEndpoint_Created(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/worker-profiles", bearerFor(t, 1), dto.CreateWorkerProfileRequest{
		FirstName:   "Jane",
		LastName:    "Roe",
		ProfileName: "Default",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.WorkerProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsPrimary)
	assert.Equal(t, "Default", resp.ProfileName)
}

func TestCreateProfileEndpoint_ValidationError(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/worker-profiles", bearerFor(t, 1), map[string]string{
		"first_name": "Jane",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestCreateProfileEndpoint_Unauthorized(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/worker-profiles", "", dto.CreateWorkerProfileRequest{
		FirstName:   "Jane",
		LastName:    "Roe",
		ProfileName: "Default",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProfileEndpoint_DuplicateNameConflict(t *testing.T) {
	router, _ := newTestRouter(t)
	token := bearerFor(t, 1)

	req := dto.CreateWorkerProfileRequest{FirstName: "Jane", LastName: "Roe", ProfileName: "Default"}
	w := doJSON(t, router, http.MethodPost, "/api/worker-profiles", token, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/worker-profiles", token, req)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestListProfilesEndpoint_PublicAndOrdered(t *testing.T) {
	router, _ := newTestRouter(t)
	token := bearerFor(t, 1)

	for _, name := range []string{"A", "B"} {
		w := doJSON(t, router, http.MethodPost, "/api/worker-profiles", token, dto.CreateWorkerProfileRequest{
			FirstName: "Jane", LastName: "Roe", ProfileName: name,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/api/worker-profiles/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.WorkerProfileListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Total)
	assert.True(t, resp.Profiles[0].IsPrimary)
}

func TestGetPrimaryEndpoint_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/worker-profiles/7/primary", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProfilesEndpoint_BadUserID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/worker-profiles/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetPrimaryEndpoint_ForbiddenForOtherUser(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/worker-profiles", bearerFor(t, 1), dto.CreateWorkerProfileRequest{
		FirstName: "Jane", LastName: "Roe", ProfileName: "Default",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.WorkerProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// пользователь 2 пытается переключить primary пользователя 1
	path := fmt.Sprintf("/api/worker-profiles/1/primary/%d", created.ID)
	w = doJSON(t, router, http.MethodPost, path, bearerFor(t, 2), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteProfileEndpoint_ReportsWasPrimary(t *testing.T) {
	router, _ := newTestRouter(t)
	token := bearerFor(t, 1)

	w := doJSON(t, router, http.MethodPost, "/api/worker-profiles", token, dto.CreateWorkerProfileRequest{
		FirstName: "Jane", LastName: "Roe", ProfileName: "Default",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.WorkerProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/worker-profiles/1/%d", created.ID)
	w = doJSON(t, router, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["deleted"])
	assert.True(t, resp["wasPrimary"])
}

func TestDeleteProfileEndpoint_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodDelete, "/api/worker-profiles/1/999", bearerFor(t, 1), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
