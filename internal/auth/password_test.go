package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3curePass!")
	require.NoError(t, err)
	require.NotEqual(t, "s3curePass!", hash)

	assert.True(t, CheckPasswordHash("s3curePass!", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
}
