package handlers

import (
	"net/http"

	"careercenter_backend/internal/services"
	"careercenter_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{BaseHandler: base, analyticsService: analyticsService}
}

func (h *AnalyticsHandler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/analytics/overview", h.Overview)
	public.GET("/analytics/company-activity", h.CompanyActivity)
	public.GET("/analytics/word-cloud", h.WordCloud)
	public.GET("/vacancies/stats/by-time", h.VacancyStatsByTime)
	public.GET("/users/stats/by-time", h.UserStatsByTime)
}

func (h *AnalyticsHandler) Overview(c *gin.Context) {
	stats, err := h.analyticsService.Overview(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) VacancyStatsByTime(c *gin.Context) {
	var req dto.TimeSeriesRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	points, err := h.analyticsService.VacancyStatsByTime(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *AnalyticsHandler) UserStatsByTime(c *gin.Context) {
	var req dto.TimeSeriesRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	points, err := h.analyticsService.UserStatsByTime(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *AnalyticsHandler) CompanyActivity(c *gin.Context) {
	var req dto.CompanyActivityRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	stats, err := h.analyticsService.CompanyActivity(c.Request.Context(), req.Limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) WordCloud(c *gin.Context) {
	var req dto.WordCloudRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	stats, err := h.analyticsService.WordCloud(c.Request.Context(), req.Limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
