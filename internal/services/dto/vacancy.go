package dto

import (
	"time"

	"careercenter_backend/internal/models"
)

// CreateVacancyRequest - публикация вакансии компанией
type CreateVacancyRequest struct {
	CompanyID      string `json:"company_id" validate:"required,uuid"`
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description" validate:"required"`
	Requirements   string `json:"requirements,omitempty"`
	SalaryRange    string `json:"salary_range,omitempty"`
	Location       string `json:"location,omitempty"`
	EmploymentType string `json:"employment_type,omitempty"`
	IsInternship   bool   `json:"is_internship"`
}

// ModeratorVacancyFilter - фильтр очереди модерации.
// Пустой статус означает вакансии всех статусов.
type ModeratorVacancyFilter struct {
	Status string `form:"status" validate:"omitempty,is-vacancy-status"`
}

// ListVacanciesRequest - фильтры публичного списка вакансий
type ListVacanciesRequest struct {
	EmploymentType string `form:"employment_type"`
	IsInternship   *bool  `form:"is_internship"`
	Limit          int    `form:"limit" validate:"omitempty,min=1,max=200"`
}

// FeedbackMessage - попап-уведомление для фронтенда
type FeedbackMessage struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// CreateVacancyResponse - созданная вакансия плюс попап
type CreateVacancyResponse struct {
	Data            VacancyDTO      `json:"data"`
	FeedbackMessage FeedbackMessage `json:"feedback_message"`
}

// CompanyProfileDTO - вложенная карточка компании внутри вакансии.
// Фронтенд читает её как v.company_profiles.company_name.
type CompanyProfileDTO struct {
	CompanyName string `json:"company_name"`
	Description string `json:"description,omitempty"`
}

// VacancyDTO - вакансия с вложенной карточкой компании
type VacancyDTO struct {
	ID              string               `json:"id"`
	CompanyID       string               `json:"company_id"`
	CompanyProfiles *CompanyProfileDTO   `json:"company_profiles,omitempty"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	Requirements    string               `json:"requirements,omitempty"`
	SalaryRange     string               `json:"salary_range,omitempty"`
	Location        string               `json:"location,omitempty"`
	EmploymentType  string               `json:"employment_type,omitempty"`
	IsInternship    bool                 `json:"is_internship"`
	Status          models.VacancyStatus `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// MyVacancyDTO - вакансия компании с количеством откликов
type MyVacancyDTO struct {
	VacancyDTO
	ResponseCount int64 `json:"response_count"`
}

func VacancyToDTO(vacancy *models.Vacancy) VacancyDTO {
	d := VacancyDTO{
		ID:             vacancy.ID,
		CompanyID:      vacancy.CompanyID,
		Title:          vacancy.Title,
		Description:    vacancy.Description,
		Requirements:   vacancy.Requirements,
		SalaryRange:    vacancy.SalaryRange,
		Location:       vacancy.Location,
		EmploymentType: vacancy.EmploymentType,
		IsInternship:   vacancy.IsInternship,
		Status:         vacancy.Status,
		CreatedAt:      vacancy.CreatedAt,
		UpdatedAt:      vacancy.UpdatedAt,
	}
	if vacancy.Company != nil {
		profile := &CompanyProfileDTO{CompanyName: vacancy.Company.CompanyName}
		if vacancy.Company.CompanyProfile != nil {
			if profile.CompanyName == "" {
				profile.CompanyName = vacancy.Company.CompanyProfile.CompanyName
			}
			profile.Description = vacancy.Company.CompanyProfile.Description
		}
		d.CompanyProfiles = profile
	}
	return d
}
