package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_UnwrapsToCause(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := InternalError(cause)

	assert.ErrorIs(t, appErr, cause)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
	assert.Contains(t, appErr.Error(), "connection refused")
}

func TestAs_ExtractsAppError(t *testing.T) {
	var appErr *AppError
	err := error(NewNotFoundError("worker_profile", "not here"))

	require.True(t, As(err, &appErr))
	assert.Equal(t, CodeNotFound, appErr.Code)
	assert.Equal(t, "worker_profile", appErr.Domain)
}

func TestMarshalJSON_HidesInternals(t *testing.T) {
	appErr := InternalError(errors.New("secret dsn leaked"))

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secret dsn leaked")
	assert.NotContains(t, string(raw), "HTTPCode")
	assert.Contains(t, string(raw), string(CodeInternalError))
}

func TestWithDetails_SerializedForClient(t *testing.T) {
	appErr := ValidationError(map[string]string{"email": "This field is required"})

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "This field is required")
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestDomainSentinels_MatchByIdentity(t *testing.T) {
	err := error(ErrDuplicateProfileName)
	assert.ErrorIs(t, err, ErrDuplicateProfileName)
	assert.Equal(t, http.StatusConflict, ErrDuplicateProfileName.HTTPCode)
	assert.Equal(t, http.StatusNotFound, ErrWorkerProfileNotFound.HTTPCode)
}
