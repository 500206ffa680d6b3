package apperrors

import (
	"github.com/gin-gonic/gin"

	"careercenter_backend/internal/logger"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError - отдает ошибку клиенту в стандартном конверте.
// Не-AppError оборачивается в InternalError: наружу уходит только
// generic message, причина остается в логах.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", appErr, "path", c.Request.URL.Path)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
