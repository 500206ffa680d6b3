package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercenter_backend/test/helpers"
)

func TestModeratorVacancyQueue(t *testing.T) {
	ts := GetTestServer(t)
	ts.RequireDB(t)

	company := helpers.RegisterAndLogin(t, ts, "", "company")
	moderator := helpers.RegisterAndLogin(t, ts, "", "moderator")

	vacancyID := createVacancy(t, ts, company, "Data Analyst (moderation queue)")
	approvedID := createVacancy(t, ts, company, "QA Engineer (approved)")
	approveVacancy(t, ts, moderator, approvedID)

	// Без фильтра модератор видит вакансии всех статусов
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/moderator/vacancies", moderator.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, vacancyID)
	assert.Contains(t, bodyStr, approvedID)

	// Явный фильтр оставляет только запрошенный статус
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/moderator/vacancies?status=pending", moderator.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, vacancyID)
	assert.NotContains(t, bodyStr, approvedID)

	// Неизвестный статус отклоняется валидатором
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/moderator/vacancies?status=draft", moderator.Token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)

	// Отклонение
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/moderator/vacancies/"+vacancyID+"/reject", moderator.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/vacancies/"+vacancyID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"status":"rejected"`)

	// Удаление
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/moderator/vacancies/"+vacancyID, moderator.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/vacancies/"+vacancyID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestModeratorAnalytics(t *testing.T) {
	ts := GetTestServer(t)
	ts.RequireDB(t)

	moderator := helpers.RegisterAndLogin(t, ts, "", "moderator")

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/moderator/analytics/detailed", moderator.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	var analytics struct {
		UsersByType       map[string]int64 `json:"users_by_type"`
		VacanciesByStatus map[string]int64 `json:"vacancies_by_status"`
		TotalUsers        int64            `json:"total_users"`
		TotalVacancies    int64            `json:"total_vacancies"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &analytics))

	// Карты заполнены нулями для всех типов и статусов
	for _, userType := range []string{"student", "company", "university", "moderator"} {
		_, ok := analytics.UsersByType[userType]
		assert.True(t, ok, "users_by_type должен содержать %q", userType)
	}
	for _, status := range []string{"pending", "active", "rejected", "archived"} {
		_, ok := analytics.VacanciesByStatus[status]
		assert.True(t, ok, "vacancies_by_status должен содержать %q", status)
	}
}

func TestModeratorUsersList(t *testing.T) {
	ts := GetTestServer(t)
	ts.RequireDB(t)

	moderator := helpers.RegisterAndLogin(t, ts, "", "moderator")
	student := helpers.RegisterAndLogin(t, ts, "", "student")

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/moderator/users", moderator.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, student.Email)

	// Хеши паролей наружу не уходят
	assert.NotContains(t, bodyStr, "password")
}
