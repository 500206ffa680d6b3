package app

import (
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"careercenter_backend/database"
	"careercenter_backend/internal/config"
	"careercenter_backend/internal/handlers"
	"careercenter_backend/internal/logger"
	"careercenter_backend/internal/metrics"
	"careercenter_backend/internal/middleware"
	"careercenter_backend/internal/repositories"
	"careercenter_backend/internal/routes"
	"careercenter_backend/internal/services"
	"careercenter_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	gormDB, sqlDB := initDatabase(cfg)
	llm := initLLM(cfg)

	ginRouter := SetupRouter(cfg, gormDB, sqlDB, llm)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// initDatabase подключает Postgres и накатывает миграции.
// Отсутствие DATABASE_URL не фатально: сервер поднимается в
// деградированном режиме, эндпоинты данных отвечают 503.
func initDatabase(cfg *config.Config) (*gorm.DB, *sql.DB) {
	if cfg.Database.DSN == "" {
		logger.Warn("DATABASE_URL is not set, starting without database")
		return nil, nil
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Warn("Failed to connect to database, starting without it", "error", err)
		return nil, nil
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Warn("Failed to get *sql.DB from GORM, starting without database", "error", err)
		return nil, nil
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Warn("Database unavailable, starting without it", "error", err)
		return nil, nil
	}

	if err := database.Migrate(sqlDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	logger.Info("Database connected")
	return gormDB, sqlDB
}

// initLLM создаёт OpenAI-клиент. Без ключа AI-функции отключены.
func initLLM(cfg *config.Config) llms.Model {
	if cfg.OpenAI.APIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set, AI features disabled")
		return nil
	}

	llm, err := openai.New(
		openai.WithToken(cfg.OpenAI.APIKey),
		openai.WithModel(cfg.OpenAI.Model),
	)
	if err != nil {
		logger.Warn("Failed to initialize OpenAI client, AI features disabled", "error", err)
		return nil
	}
	return llm
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB, llm llms.Model) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB, sqlDB, llm)
	appHandlers := initializeHandlers(serviceContainer, gormDB != nil, llm != nil)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	ginRouter := initializeGinRouter(cfg, collector)
	routes.RegisterRoutes(ginRouter, appHandlers, registry, cfg.Static.Dir)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB, llm llms.Model) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	resumeRepo := repositories.NewResumeRepository(gormDB)
	vacancyRepo := repositories.NewVacancyRepository(gormDB)
	touchRepo := repositories.NewTouchRepository(gormDB)
	appointmentRepo := repositories.NewAppointmentRepository(gormDB)
	chatRepo := repositories.NewChatRepository(gormDB)
	analyticsRepo := repositories.NewAnalyticsRepository(sqlDB)

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(gormDB, userRepo),
		ProfileService:     services.NewProfileService(gormDB, profileRepo),
		ResumeService:      services.NewResumeService(gormDB, resumeRepo),
		VacancyService:     services.NewVacancyService(gormDB, vacancyRepo),
		TouchService:       services.NewTouchService(gormDB, touchRepo, vacancyRepo, resumeRepo, profileRepo),
		SearchService:      services.NewSearchService(gormDB, profileRepo, vacancyRepo, touchRepo),
		AIService:          services.NewAIService(gormDB, llm, cfg.OpenAI.Model, touchRepo),
		AppointmentService: services.NewAppointmentService(gormDB, appointmentRepo),
		ChatService:        services.NewChatService(gormDB, chatRepo),
		AnalyticsService:   services.NewAnalyticsService(sqlDB, analyticsRepo),
		ModeratorService:   services.NewModeratorService(gormDB, userRepo, vacancyRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer, dbConnected, openaiConfigured bool) *handlers.AppHandlers {
	v := validator.New()
	base := handlers.NewBaseHandler(v)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(base, container.AuthService),
		HealthHandler:      handlers.NewHealthHandler(dbConnected, openaiConfigured),
		ProfileHandler:     handlers.NewProfileHandler(base, container.ProfileService),
		ResumeHandler:      handlers.NewResumeHandler(base, container.ResumeService),
		VacancyHandler:     handlers.NewVacancyHandler(base, container.VacancyService, container.TouchService),
		TouchHandler:       handlers.NewTouchHandler(base, container.TouchService, container.AIService),
		SearchHandler:      handlers.NewSearchHandler(base, container.SearchService),
		AIHandler:          handlers.NewAIHandler(base, container.AIService),
		AnalyticsHandler:   handlers.NewAnalyticsHandler(base, container.AnalyticsService),
		AppointmentHandler: handlers.NewAppointmentHandler(base, container.AppointmentService, container.ChatService),
		ModeratorHandler:   handlers.NewModeratorHandler(base, container.ModeratorService),
	}
}

func initializeGinRouter(cfg *config.Config, collector *metrics.Collector) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
		middleware.MetricsMiddleware(collector),
	)
	return ginRouter
}
