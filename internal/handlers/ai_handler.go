package handlers

import (
	"net/http"

	"careercenter_backend/internal/services"
	"careercenter_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	*BaseHandler
	aiService services.AIService
}

func NewAIHandler(base *BaseHandler, aiService services.AIService) *AIHandler {
	return &AIHandler{BaseHandler: base, aiService: aiService}
}

func (h *AIHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/ai/chat", h.Chat)
}

// Chat всегда отвечает 200: сбои провайдера конвертируются
// в фиксированный текст
func (h *AIHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp := h.aiService.Chat(c.Request.Context(), &req)
	c.JSON(http.StatusOK, resp)
}
