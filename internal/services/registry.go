package services

// ServiceContainer - все сервисы приложения в одном месте
type ServiceContainer struct {
	AuthService        AuthService
	ProfileService     ProfileService
	ResumeService      ResumeService
	VacancyService     VacancyService
	TouchService       TouchService
	SearchService      SearchService
	AIService          AIService
	AppointmentService AppointmentService
	ChatService        ChatService
	AnalyticsService   AnalyticsService
	ModeratorService   ModeratorService
}
