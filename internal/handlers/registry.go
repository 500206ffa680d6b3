package handlers

// AppHandlers - готовые HTTP-обработчики приложения
type AppHandlers struct {
	AuthHandler        *AuthHandler
	HealthHandler      *HealthHandler
	ProfileHandler     *ProfileHandler
	ResumeHandler      *ResumeHandler
	VacancyHandler     *VacancyHandler
	TouchHandler       *TouchHandler
	SearchHandler      *SearchHandler
	AIHandler          *AIHandler
	AnalyticsHandler   *AnalyticsHandler
	AppointmentHandler *AppointmentHandler
	ModeratorHandler   *ModeratorHandler
}
