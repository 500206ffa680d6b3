package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercenter_backend/internal/auth"
	"careercenter_backend/internal/config"
	"careercenter_backend/internal/models"
)

func setupProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "middleware-test-secret"
	cfg.JWT.TTL = 1
	config.AppConfig = cfg

	router := gin.New()
	protected := router.Group("/", AuthMiddleware())
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":   GetUserID(c),
			"user_type": GetUserType(c),
		})
	})
	protected.GET("/moderator", RequireUserType(models.UserTypeModerator), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router := setupProtectedRouter()

	token, err := auth.GenerateToken("user-1", "student@test.com", "student")
	require.NoError(t, err)

	w := doRequest(router, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), "student")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := setupProtectedRouter()

	w := doRequest(router, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not authenticated")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router := setupProtectedRouter()

	w := doRequest(router, "/me", "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := setupProtectedRouter()

	w := doRequest(router, "/me", "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestRequireUserType_Moderator(t *testing.T) {
	router := setupProtectedRouter()

	studentToken, err := auth.GenerateToken("stu-1", "student@test.com", "student")
	require.NoError(t, err)

	w := doRequest(router, "/moderator", "Bearer "+studentToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "moderator")

	modToken, err := auth.GenerateToken("mod-1", "mod@test.com", "moderator")
	require.NoError(t, err)

	w = doRequest(router, "/moderator", "Bearer "+modToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
