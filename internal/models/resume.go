package models

import (
	"gorm.io/datatypes"
)

type Resume struct {
	BaseModel
	StudentID    string                      `gorm:"type:uuid;not null;index" json:"student_id"`
	Title        string                      `gorm:"not null" json:"title"`
	Education    string                      `json:"education,omitempty"`
	Experience   string                      `json:"experience,omitempty"`
	Skills       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"skills"`
	Languages    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"languages"`
	Achievements string                      `json:"achievements,omitempty"`
	// Унаследованная колонка: старый фронтенд писал полный текст резюме сюда
	Content string `json:"content,omitempty"`

	Student *User `gorm:"foreignKey:StudentID" json:"-"`
}
