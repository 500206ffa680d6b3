package handlers

import (
	"net/http"

	"careercenter_backend/internal/models"
	"careercenter_backend/internal/services"
	"careercenter_backend/internal/services/dto"
	"careercenter_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type VacancyHandler struct {
	*BaseHandler
	vacancyService services.VacancyService
	touchService   services.TouchService
}

func NewVacancyHandler(base *BaseHandler, vacancyService services.VacancyService, touchService services.TouchService) *VacancyHandler {
	return &VacancyHandler{BaseHandler: base, vacancyService: vacancyService, touchService: touchService}
}

func (h *VacancyHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	protected.POST("/vacancies", h.Create)
	public.GET("/vacancies", h.List)
	public.GET("/vacancies/:id", h.GetByID)
	protected.GET("/vacancies/:id/responses", h.Responses)
	protected.GET("/companies/my-vacancies", h.ListMine)
}

func (h *VacancyHandler) Create(c *gin.Context) {
	callerID, ok := h.RequireUserType(c, models.UserTypeCompany, apperrors.ErrCompanyOnly)
	if !ok {
		return
	}

	var req dto.CreateVacancyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.vacancyService.Create(callerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VacancyHandler) List(c *gin.Context) {
	var req dto.ListVacanciesRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	vacancies, err := h.vacancyService.List(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vacancies)
}

func (h *VacancyHandler) GetByID(c *gin.Context) {
	vacancy, err := h.vacancyService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vacancy)
}

// Responses - вакансия с откликами, только для владельца
func (h *VacancyHandler) Responses(c *gin.Context) {
	callerID, ok := h.RequireAuthenticatedUser(c)
	if !ok {
		return
	}

	result, err := h.touchService.VacancyWithResponses(callerID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *VacancyHandler) ListMine(c *gin.Context) {
	callerID, ok := h.RequireUserType(c, models.UserTypeCompany, apperrors.ErrCompanyOnly)
	if !ok {
		return
	}

	vacancies, err := h.vacancyService.ListMine(callerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vacancies)
}
