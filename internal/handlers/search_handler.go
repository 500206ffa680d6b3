package handlers

import (
	"net/http"

	"careercenter_backend/internal/models"
	"careercenter_backend/internal/services"
	"careercenter_backend/internal/services/dto"
	"careercenter_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{BaseHandler: base, searchService: searchService}
}

func (h *SearchHandler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/candidates/search", h.SearchCandidates)
}

func (h *SearchHandler) SearchCandidates(c *gin.Context) {
	callerID, ok := h.RequireUserType(c, models.UserTypeCompany, apperrors.ErrCompanyOnly)
	if !ok {
		return
	}

	var req dto.SearchCandidatesRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	candidates, err := h.searchService.SearchCandidates(callerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}
