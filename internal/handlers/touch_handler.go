package handlers

import (
	"net/http"

	"careercenter_backend/internal/models"
	"careercenter_backend/internal/services"
	"careercenter_backend/internal/services/dto"
	"careercenter_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type TouchHandler struct {
	*BaseHandler
	touchService services.TouchService
	aiService    services.AIService
}

func NewTouchHandler(base *BaseHandler, touchService services.TouchService, aiService services.AIService) *TouchHandler {
	return &TouchHandler{BaseHandler: base, touchService: touchService, aiService: aiService}
}

func (h *TouchHandler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/vacancy_touches", h.Create)
	protected.GET("/vacancy_responses/company", h.CompanyResponses)
	protected.POST("/vacancy_touch/:id/generate_summary", h.GenerateSummary)
}

func (h *TouchHandler) Create(c *gin.Context) {
	callerID, ok := h.RequireUserType(c, models.UserTypeStudent, apperrors.ErrStudentOnly)
	if !ok {
		return
	}

	var req dto.CreateTouchRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.touchService.Create(callerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TouchHandler) CompanyResponses(c *gin.Context) {
	callerID, ok := h.RequireUserType(c, models.UserTypeCompany, apperrors.ErrCompanyOnly)
	if !ok {
		return
	}

	responses, err := h.touchService.CompanyResponses(callerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses)
}

func (h *TouchHandler) GenerateSummary(c *gin.Context) {
	callerID, ok := h.RequireAuthenticatedUser(c)
	if !ok {
		return
	}

	touch, err := h.aiService.GenerateSummary(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, touch)
}
