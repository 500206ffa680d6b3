package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Тестовый сервер поднимается без ключа OpenAI, поэтому чат всегда
// отвечает фиксированным текстом, а не ошибкой HTTP
func TestAIChat_WithoutProvider(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/ai/chat", "", map[string]interface{}{
		"query": "Как найти стажировку?",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var chat struct {
		Response string      `json:"response"`
		Action   interface{} `json:"action"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &chat))
	assert.Equal(t, "AI чат временно недоступен.", chat.Response)
	assert.Nil(t, chat.Action)
}

func TestAIChat_RequiresQuery(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/ai/chat", "", map[string]interface{}{})
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	assert.Contains(t, bodyStr, "query")
}
