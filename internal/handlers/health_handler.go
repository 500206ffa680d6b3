package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	dbConnected      bool
	openaiConfigured bool
}

func NewHealthHandler(dbConnected, openaiConfigured bool) *HealthHandler {
	return &HealthHandler{dbConnected: dbConnected, openaiConfigured: openaiConfigured}
}

func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", h.Health)
}

// Health - статус сервиса. Ключ supabase_connected сохранён ради
// совместимости со старым фронтендом.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"supabase_connected": h.dbConnected,
		"openai_configured":  h.openaiConfigured,
	})
}
