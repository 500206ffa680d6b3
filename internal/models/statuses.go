package models

type UserType string
type VacancyStatus string
type TouchStatus string
type AppointmentStatus string
type Granularity string

const (
	UserTypeStudent    UserType = "student"
	UserTypeCompany    UserType = "company"
	UserTypeUniversity UserType = "university"
	UserTypeModerator  UserType = "moderator"

	VacancyStatusPending  VacancyStatus = "pending"
	VacancyStatusActive   VacancyStatus = "active"
	VacancyStatusRejected VacancyStatus = "rejected"
	VacancyStatusArchived VacancyStatus = "archived"

	TouchStatusPending  TouchStatus = "pending"
	TouchStatusViewed   TouchStatus = "viewed"
	TouchStatusAccepted TouchStatus = "accepted"
	TouchStatusRejected TouchStatus = "rejected"

	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"

	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)
