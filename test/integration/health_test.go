package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var payload struct {
		Status            string `json:"status"`
		SupabaseConnected bool   `json:"supabase_connected"`
		OpenAIConfigured  bool   `json:"openai_configured"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &payload))

	assert.Equal(t, "healthy", payload.Status)
	assert.Equal(t, ts.DB != nil, payload.SupabaseConnected)
	assert.False(t, payload.OpenAIConfigured)
}

func TestUnknownAPIRoute(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/definitely/not/here", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.JSONEq(t, `{"detail": "API endpoint not found"}`, bodyStr)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := GetTestServer(t)

	// Хотя бы один запрос до scrape, чтобы счетчик появился в выдаче
	_, _ = ts.SendRequest(t, http.MethodGet, "/api/health", "", nil)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "careercenter_http_requests_total")
}
