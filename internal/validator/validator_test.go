package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nickname string `json:"nickname" validate:"omitempty,max=10"`
}

func TestValidate_OK(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{Email: "jane@example.com", Password: "longenough"})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)

	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
}

func TestValidate_OptionalFieldSkippedWhenEmpty(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{Email: "jane@example.com", Password: "longenough", Nickname: ""})
	assert.NoError(t, err)

	err = v.Validate(&sampleRequest{Email: "jane@example.com", Password: "longenough", Nickname: "waytoolongnickname"})
	require.Error(t, err)
}

func TestValidationError_ErrorString(t *testing.T) {
	err := &ValidationError{Errors: map[string]string{"email": "This field is required"}}
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "Validation failed")
}
