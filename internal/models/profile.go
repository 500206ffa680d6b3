package models

import (
	"gorm.io/datatypes"
)

// StudentProfile - расширение User для студентов.
// skills лежит в jsonb: поиск кандидатов использует containment (@>)
type StudentProfile struct {
	BaseModel
	UserID         string                      `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	University     string                      `json:"university,omitempty"`
	Major          string                      `json:"major,omitempty"`
	GraduationYear *int                        `json:"graduation_year,omitempty"`
	Skills         datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"skills"`
	Bio            string                      `json:"bio,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

type CompanyProfile struct {
	BaseModel
	UserID      string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CompanyName string `gorm:"not null" json:"company_name"`
	Industry    string `json:"industry,omitempty"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	Size        string `json:"size,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

type UniversityProfile struct {
	BaseModel
	UserID         string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	UniversityName string `gorm:"not null" json:"university_name"`
	Description    string `json:"description,omitempty"`
	Website        string `json:"website,omitempty"`
	ContactEmail   string `json:"contact_email,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
