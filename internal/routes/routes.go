package routes

import (
	"careercenter_backend/internal/handlers"
	"careercenter_backend/internal/metrics"
	"careercenter_backend/internal/middleware"
	"careercenter_backend/internal/models"
	"careercenter_backend/internal/spa"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// RegisterRoutes регистрирует все HTTP-маршруты приложения
func RegisterRoutes(
	engine *gin.Engine,
	appHandlers *handlers.AppHandlers,
	registry *prometheus.Registry,
	staticDir string,
) {
	api := engine.Group("/api")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.AIHandler.RegisterRoutes(api)
		appHandlers.AnalyticsHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			appHandlers.ProfileHandler.RegisterRoutes(api, protected)
			appHandlers.ResumeHandler.RegisterRoutes(api, protected)
			appHandlers.VacancyHandler.RegisterRoutes(api, protected)
			appHandlers.TouchHandler.RegisterRoutes(protected)
			appHandlers.SearchHandler.RegisterRoutes(protected)
			appHandlers.AppointmentHandler.RegisterRoutes(protected)
		}

		moderator := api.Group("/moderator")
		moderator.Use(middleware.AuthMiddleware(), middleware.RequireUserType(models.UserTypeModerator))
		{
			appHandlers.ModeratorHandler.RegisterRoutes(moderator)
		}
	}

	engine.GET("/metrics", gin.WrapH(metrics.Handler(registry)))

	// Всё, что не попало в API, уходит во фронтенд
	engine.NoRoute(spa.Fallback(staticDir))
}
