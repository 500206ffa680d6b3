package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercenter_backend/test/helpers"
)

func TestAppointmentFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.RequireDB(t)

	student := helpers.RegisterAndLogin(t, ts, "", "student")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/appointments", student.Token, map[string]interface{}{
		"student_id":       student.ID,
		"appointment_date": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"appointment_type": "career_consultation",
		"notes":            "Консультация по резюме",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Создание записи. Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, `"status":"scheduled"`)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/appointments/student/"+student.ID, student.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var appointments []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &appointments))
	require.NotEmpty(t, appointments)
	assert.Equal(t, "career_consultation", appointments[0]["appointment_type"])
}

func TestChatMessages(t *testing.T) {
	ts := GetTestServer(t)
	ts.RequireDB(t)

	student := helpers.RegisterAndLogin(t, ts, "", "student")
	company := helpers.RegisterAndLogin(t, ts, "", "company")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/chat/messages", student.Token, map[string]interface{}{
		"sender_id":   student.ID,
		"receiver_id": company.ID,
		"message":     "Здравствуйте! Вакансия ещё актуальна?",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Отправка сообщения. Ответ: "+bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/chat/messages/"+student.ID, student.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var messages []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &messages))
	require.NotEmpty(t, messages)
	assert.Equal(t, "Здравствуйте! Вакансия ещё актуальна?", messages[0]["message"])
}
