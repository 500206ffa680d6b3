package handlers

import (
	"net/http"

	"careercenter_backend/internal/models"
	"careercenter_backend/internal/services"
	"careercenter_backend/internal/services/dto"
	"careercenter_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	*BaseHandler
	appointmentService services.AppointmentService
	chatService        services.ChatService
}

func NewAppointmentHandler(base *BaseHandler, appointmentService services.AppointmentService, chatService services.ChatService) *AppointmentHandler {
	return &AppointmentHandler{
		BaseHandler:        base,
		appointmentService: appointmentService,
		chatService:        chatService,
	}
}

func (h *AppointmentHandler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/appointments", h.Create)
	protected.GET("/appointments/student/:student_id", h.ListByStudent)

	protected.POST("/chat/messages", h.SendMessage)
	protected.GET("/chat/messages/:user_id", h.ListMessages)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	callerID, ok := h.RequireUserType(c, models.UserTypeStudent, apperrors.ErrStudentOnly)
	if !ok {
		return
	}

	var req dto.CreateAppointmentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	appointment, err := h.appointmentService.Create(callerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func (h *AppointmentHandler) ListByStudent(c *gin.Context) {
	if _, ok := h.RequireAuthenticatedUser(c); !ok {
		return
	}

	appointments, err := h.appointmentService.ListByStudent(c.Param("student_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) SendMessage(c *gin.Context) {
	callerID, ok := h.RequireAuthenticatedUser(c)
	if !ok {
		return
	}

	var req dto.CreateChatMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	message, err := h.chatService.Send(callerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

func (h *AppointmentHandler) ListMessages(c *gin.Context) {
	if _, ok := h.RequireAuthenticatedUser(c); !ok {
		return
	}

	var req dto.ListChatMessagesRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	messages, err := h.chatService.List(c.Param("user_id"), req.Limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
