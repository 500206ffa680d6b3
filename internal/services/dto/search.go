package dto

import (
	"time"

	"careercenter_backend/internal/models"
)

// SearchCandidatesRequest - поиск студентов компанией.
// skills передаётся одной строкой через запятую.
type SearchCandidatesRequest struct {
	Skills       string `form:"skills"`
	Major        string `form:"major"`
	University   string `form:"university"`
	GradYearFrom *int   `form:"grad_year_from"`
	GradYearTo   *int   `form:"grad_year_to"`
}

// CandidateDTO - найденный студент с откликами на вакансии компании
type CandidateDTO struct {
	UserID             string        `json:"user_id"`
	FullName           string        `json:"full_name"`
	Email              string        `json:"email"`
	University         string        `json:"university,omitempty"`
	Major              string        `json:"major,omitempty"`
	GraduationYear     *int          `json:"graduation_year,omitempty"`
	Skills             []string      `json:"skills"`
	Bio                string        `json:"bio,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	MyCompanyResponses []TouchRecord `json:"my_company_responses"`
}

func CandidateFromProfile(profile *models.StudentProfile) CandidateDTO {
	c := CandidateDTO{
		UserID:             profile.UserID,
		University:         profile.University,
		Major:              profile.Major,
		GraduationYear:     profile.GraduationYear,
		Skills:             []string(profile.Skills),
		Bio:                profile.Bio,
		CreatedAt:          profile.CreatedAt,
		MyCompanyResponses: []TouchRecord{},
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	if profile.User != nil {
		c.FullName = profile.User.FullName
		c.Email = profile.User.Email
	}
	return c
}
