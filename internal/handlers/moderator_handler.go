package handlers

import (
	"net/http"

	"careercenter_backend/internal/services"
	"careercenter_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ModeratorHandler struct {
	*BaseHandler
	moderatorService services.ModeratorService
}

func NewModeratorHandler(base *BaseHandler, moderatorService services.ModeratorService) *ModeratorHandler {
	return &ModeratorHandler{BaseHandler: base, moderatorService: moderatorService}
}

// RegisterRoutes ожидает группу, уже закрытую проверкой роли модератора
func (h *ModeratorHandler) RegisterRoutes(moderator *gin.RouterGroup) {
	moderator.GET("/users", h.ListUsers)
	moderator.GET("/universities", h.ListUniversities)
	moderator.GET("/vacancies", h.ListVacancies)
	moderator.POST("/vacancies/:id/approve", h.ApproveVacancy)
	moderator.POST("/vacancies/:id/reject", h.RejectVacancy)
	moderator.DELETE("/vacancies/:id", h.DeleteVacancy)
	moderator.GET("/analytics/detailed", h.Analytics)
}

func (h *ModeratorHandler) ListUsers(c *gin.Context) {
	users, err := h.moderatorService.ListUsers()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *ModeratorHandler) ListUniversities(c *gin.Context) {
	universities, err := h.moderatorService.ListUniversities()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, universities)
}

func (h *ModeratorHandler) ListVacancies(c *gin.Context) {
	var filter dto.ModeratorVacancyFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}

	vacancies, err := h.moderatorService.ListVacancies(filter.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vacancies)
}

func (h *ModeratorHandler) ApproveVacancy(c *gin.Context) {
	vacancy, err := h.moderatorService.ApproveVacancy(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vacancy)
}

func (h *ModeratorHandler) RejectVacancy(c *gin.Context) {
	vacancy, err := h.moderatorService.RejectVacancy(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vacancy)
}

func (h *ModeratorHandler) DeleteVacancy(c *gin.Context) {
	if err := h.moderatorService.DeleteVacancy(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vacancy deleted"})
}

func (h *ModeratorHandler) Analytics(c *gin.Context) {
	analytics, err := h.moderatorService.Analytics()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}
