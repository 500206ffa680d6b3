package dto

import "careercenter_backend/internal/models"

// CreateTouchRequest - отклик студента на вакансию
type CreateTouchRequest struct {
	VacancyID      string  `json:"vacancy_id" validate:"required,uuid"`
	StudentID      string  `json:"student_id" validate:"required,uuid"`
	ResumeID       *string `json:"resume_id,omitempty" validate:"omitempty,uuid"`
	AdditionalInfo string  `json:"additional_info,omitempty"`
}

// CreateTouchResponse - созданный отклик плюс попап
type CreateTouchResponse struct {
	Data            *models.VacancyTouch `json:"data"`
	FeedbackMessage FeedbackMessage      `json:"feedback_message"`
}

// TouchRecord - отклик в виде нормализованной map-строки.
// Вложенные ключи student_profiles/resumes/vacancies повторяют
// форму ответа, на которую завязан фронтенд.
type TouchRecord = map[string]interface{}
