package dto

import "careercenter_backend/internal/models"

// CreateStudentProfileRequest - создание профиля студента
type CreateStudentProfileRequest struct {
	UserID         string   `json:"user_id" validate:"required,uuid"`
	University     string   `json:"university,omitempty"`
	Major          string   `json:"major,omitempty"`
	GraduationYear *int     `json:"graduation_year,omitempty" validate:"omitempty,min=1950,max=2100"`
	Skills         []string `json:"skills,omitempty"`
	Bio            string   `json:"bio,omitempty"`
}

// CreateCompanyProfileRequest - создание профиля компании
type CreateCompanyProfileRequest struct {
	UserID      string `json:"user_id" validate:"required,uuid"`
	CompanyName string `json:"company_name" validate:"required"`
	Industry    string `json:"industry,omitempty"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	Size        string `json:"size,omitempty"`
}

// CreateUniversityProfileRequest - создание профиля вуза
type CreateUniversityProfileRequest struct {
	UserID         string `json:"user_id" validate:"required,uuid"`
	UniversityName string `json:"university_name" validate:"required"`
	Description    string `json:"description,omitempty"`
	Website        string `json:"website,omitempty"`
	ContactEmail   string `json:"contact_email,omitempty" validate:"omitempty,email"`
}

// ProfileUserDTO - вложенный блок users в ответе профиля студента
type ProfileUserDTO struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// StudentProfileDTO - профиль студента с развёрнутым пользователем.
// Ключ вложенного блока остаётся users: на него завязан фронтенд.
type StudentProfileDTO struct {
	models.StudentProfile
	Users *ProfileUserDTO `json:"users,omitempty"`
}

func StudentProfileToDTO(profile *models.StudentProfile) StudentProfileDTO {
	d := StudentProfileDTO{StudentProfile: *profile}
	if profile.User != nil {
		d.Users = &ProfileUserDTO{
			FullName: profile.User.FullName,
			Email:    profile.User.Email,
		}
	}
	return d
}

// UpdateStudentProfileRequest - частичное обновление профиля студента
type UpdateStudentProfileRequest struct {
	University     *string   `json:"university,omitempty"`
	Major          *string   `json:"major,omitempty"`
	GraduationYear *int      `json:"graduation_year,omitempty" validate:"omitempty,min=1950,max=2100"`
	Skills         *[]string `json:"skills,omitempty"`
	Bio            *string   `json:"bio,omitempty"`
}

func (r *UpdateStudentProfileRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.University != nil {
		fields["university"] = *r.University
	}
	if r.Major != nil {
		fields["major"] = *r.Major
	}
	if r.GraduationYear != nil {
		fields["graduation_year"] = *r.GraduationYear
	}
	if r.Skills != nil {
		fields["skills"] = ToJSONSlice(*r.Skills)
	}
	if r.Bio != nil {
		fields["bio"] = *r.Bio
	}
	return fields
}

// UpdateCompanyProfileRequest - частичное обновление профиля компании
type UpdateCompanyProfileRequest struct {
	CompanyName *string `json:"company_name,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
	Size        *string `json:"size,omitempty"`
}

func (r *UpdateCompanyProfileRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.CompanyName != nil {
		fields["company_name"] = *r.CompanyName
	}
	if r.Industry != nil {
		fields["industry"] = *r.Industry
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Website != nil {
		fields["website"] = *r.Website
	}
	if r.Size != nil {
		fields["size"] = *r.Size
	}
	return fields
}

// UpdateUniversityProfileRequest - частичное обновление профиля вуза
type UpdateUniversityProfileRequest struct {
	UniversityName *string `json:"university_name,omitempty"`
	Description    *string `json:"description,omitempty"`
	Website        *string `json:"website,omitempty"`
	ContactEmail   *string `json:"contact_email,omitempty" validate:"omitempty,email"`
}

func (r *UpdateUniversityProfileRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.UniversityName != nil {
		fields["university_name"] = *r.UniversityName
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Website != nil {
		fields["website"] = *r.Website
	}
	if r.ContactEmail != nil {
		fields["contact_email"] = *r.ContactEmail
	}
	return fields
}
