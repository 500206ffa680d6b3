package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AuthUser - учетные данные, полученные через API регистрации
type AuthUser struct {
	ID       string
	Email    string
	Token    string
	UserType string
}

// RegisterAndLogin регистрирует пользователя через публичный API
// и возвращает его токен. Email передаем пустым, чтобы получить
// уникальный.
func RegisterAndLogin(t *testing.T, ts *TestServer, email, userType string) *AuthUser {
	t.Helper()

	if email == "" {
		email = fmt.Sprintf("%s_%d@test.com", userType, time.Now().UnixNano())
	}

	body := map[string]interface{}{
		"email":     email,
		"password":  "super_password123",
		"full_name": "Тестовый " + userType,
		"user_type": userType,
	}
	if userType == "company" {
		body["company_name"] = "ТОО Тест"
		body["inn"] = "1234567890"
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusOK, res.StatusCode, "Регистрация должна быть успешной. Ответ: "+bodyStr)

	var authResp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		User        struct {
			ID       string `json:"id"`
			Email    string `json:"email"`
			UserType string `json:"user_type"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &authResp))
	assert.Equal(t, "bearer", authResp.TokenType)
	require.NotEmpty(t, authResp.AccessToken, "Токен не должен быть пустым")

	return &AuthUser{
		ID:       authResp.User.ID,
		Email:    email,
		Token:    authResp.AccessToken,
		UserType: userType,
	}
}

// CreateStudentWithProfile регистрирует студента и создает ему профиль
func CreateStudentWithProfile(t *testing.T, ts *TestServer, skills []string) *AuthUser {
	t.Helper()

	student := RegisterAndLogin(t, ts, "", "student")

	profileBody := map[string]interface{}{
		"user_id":         student.ID,
		"university":      "КазНУ",
		"major":           "Информационные системы",
		"graduation_year": 2026,
		"skills":          skills,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/students/profile", student.Token, profileBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "Создание профиля студента. Ответ: "+bodyStr)

	return student
}
