package handlers

import (
	"net/http"

	"careercenter_backend/internal/services"
	"careercenter_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	protected.POST("/students/profile", h.CreateStudentProfile)
	public.GET("/students/profile/:user_id", h.GetStudentProfile)
	protected.PUT("/students/profile/:user_id", h.UpdateStudentProfile)

	protected.POST("/companies/profile", h.CreateCompanyProfile)
	public.GET("/companies/profile/:user_id", h.GetCompanyProfile)
	protected.PUT("/companies/profile/:user_id", h.UpdateCompanyProfile)

	protected.POST("/universities/profile", h.CreateUniversityProfile)
	public.GET("/universities/profile/:user_id", h.GetUniversityProfile)
	protected.PUT("/universities/profile/:user_id", h.UpdateUniversityProfile)
}

func (h *ProfileHandler) CreateStudentProfile(c *gin.Context) {
	callerID, ok := h.RequireAuthenticatedUser(c)
	if !ok {
		return
	}

	var req dto.CreateStudentProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.CreateStudentProfile(callerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetStudentProfile(c *gin.Context) {
	profile, err := h.profileService.GetStudentProfile(c.Param("user_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateStudentProfile(c *gin.Context) {
	callerID, ok := h.RequireAuthenticatedUser(c)
	if !ok {
		return
	}

	var req dto.UpdateStudentProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateStudentProfile(callerID, c.Param("user_id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) CreateCompanyProfile(c *gin.Context) {
	callerID, ok := h.RequireAuthenticatedUser(c)
	if !ok {
		return
	}

	var req dto.CreateCompanyProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.CreateCompanyProfile(callerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetCompanyProfile(c *gin.Context) {
	profile, err := h.profileService.GetCompanyProfile(c.Param("user_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateCompanyProfile(c *gin.Context) {
	callerID, ok := h.RequireAuthenticatedUser(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateCompanyProfile(callerID, c.Param("user_id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) CreateUniversityProfile(c *gin.Context) {
	callerID, ok := h.RequireAuthenticatedUser(c)
	if !ok {
		return
	}

	var req dto.CreateUniversityProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.CreateUniversityProfile(callerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetUniversityProfile(c *gin.Context) {
	profile, err := h.profileService.GetUniversityProfile(c.Param("user_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateUniversityProfile(c *gin.Context) {
	callerID, ok := h.RequireAuthenticatedUser(c)
	if !ok {
		return
	}

	var req dto.UpdateUniversityProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateUniversityProfile(callerID, c.Param("user_id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
