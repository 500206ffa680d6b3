package handlers

import (
	"net/http"

	"careercenter_backend/internal/models"
	"careercenter_backend/internal/services"
	"careercenter_backend/internal/services/dto"
	"careercenter_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	*BaseHandler
	resumeService services.ResumeService
}

func NewResumeHandler(base *BaseHandler, resumeService services.ResumeService) *ResumeHandler {
	return &ResumeHandler{BaseHandler: base, resumeService: resumeService}
}

func (h *ResumeHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	protected.POST("/resumes", h.Create)
	protected.PUT("/resumes/:id", h.Update)
	public.GET("/resumes/student/:student_id", h.ListByStudent)
}

func (h *ResumeHandler) Create(c *gin.Context) {
	callerID, ok := h.RequireAuthenticatedUser(c)
	if !ok {
		return
	}

	var req dto.CreateResumeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resume, err := h.resumeService.Create(callerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	callerID, ok := h.RequireUserType(c, models.UserTypeStudent, apperrors.ErrStudentOnly)
	if !ok {
		return
	}

	var req dto.UpdateResumeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resume, err := h.resumeService.Update(callerID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) ListByStudent(c *gin.Context) {
	resumes, err := h.resumeService.ListByStudent(c.Param("student_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumes)
}
