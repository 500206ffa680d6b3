package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercenter_backend/internal/config"
	"careercenter_backend/pkg/apperrors"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key-12345"
	cfg.JWT.TTL = 168
	config.AppConfig = cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateToken("user-1", "student@test.com", "student")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "student@test.com", claims.Email)
	assert.Equal(t, "student", claims.UserType)
}

func TestParseToken_Expired(t *testing.T) {
	setTestConfig(t)

	claims := &Claims{
		Email:    "old@test.com",
		UserType: "student",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.GetConfig().JWT.Secret))
	require.NoError(t, err)

	_, err = ParseToken(expired)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig(t)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = ParseToken(forged)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig(t)

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
