package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"careercenter_backend/internal/auth"
	"careercenter_backend/internal/logger"
	"careercenter_backend/internal/models"
	"careercenter_backend/pkg/apperrors"
)

const (
	ContextUserIDKey   = "userID"
	ContextEmailKey    = "email"
	ContextUserTypeKey = "userType"
)

// AuthMiddleware - проверка bearer-токена.
// Отсутствие заголовка, просроченный и невалидный токен - все 401,
// но с разными причинами в теле.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, apperrors.ErrNotAuthenticated)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			abortWithError(c, err)
			return
		}

		// Сохраняем claims в контекст запроса
		c.Set(ContextUserIDKey, claims.UserID())
		c.Set(ContextEmailKey, claims.Email)
		c.Set(ContextUserTypeKey, claims.UserType)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID()))
		c.Next()
	}
}

// RequireUserType - ограничение маршрута по роли из токена
func RequireUserType(required models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserType(c) != string(required) {
			if required == models.UserTypeModerator {
				abortWithError(c, apperrors.ErrModeratorOnly)
				return
			}
			abortWithError(c, apperrors.NewForbiddenError("Access denied: insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	val, exists := c.Get(ContextUserIDKey)
	if !exists {
		return ""
	}
	id, ok := val.(string)
	if !ok {
		return ""
	}
	return id
}

// GetUserType извлекает роль пользователя из контекста
func GetUserType(c *gin.Context) string {
	val, exists := c.Get(ContextUserTypeKey)
	if !exists {
		return ""
	}
	userType, ok := val.(string)
	if !ok {
		return ""
	}
	return userType
}

func abortWithError(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.InternalError(err)
	}
	c.AbortWithStatusJSON(appErr.HTTPCode, apperrors.ErrorResponse{Error: appErr})
}
