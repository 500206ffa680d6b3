package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("super_password123")
	require.NoError(t, err)
	assert.NotEqual(t, "super_password123", hash)

	assert.True(t, CheckPasswordHash("super_password123", hash))
	assert.False(t, CheckPasswordHash("wrong_password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("123456"))
	assert.Error(t, ValidatePassword("12345"))
	assert.Error(t, ValidatePassword(""))
}
