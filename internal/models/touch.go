package models

// VacancyTouch - отклик студента на вакансию.
// AI-поля заполняются асинхронно эндпоинтом generate_summary.
type VacancyTouch struct {
	BaseModel
	VacancyID      string      `gorm:"type:uuid;not null;index" json:"vacancy_id"`
	StudentID      string      `gorm:"type:uuid;not null;index" json:"student_id"`
	ResumeID       *string     `gorm:"type:uuid" json:"resume_id,omitempty"`
	AdditionalInfo string      `json:"additional_info,omitempty"`
	Status         TouchStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	AISummary           *string `json:"ai_summary,omitempty"`
	MeetsCriteriaRating *int    `json:"meets_criteria_rating,omitempty"`
	MotivationRating    *int    `json:"motivation_rating,omitempty"`

	Vacancy *Vacancy `gorm:"foreignKey:VacancyID" json:"-"`
	Student *User    `gorm:"foreignKey:StudentID" json:"-"`
	Resume  *Resume  `gorm:"foreignKey:ResumeID" json:"-"`
}

// TableName - историческое имя таблицы (единственное число)
func (VacancyTouch) TableName() string {
	return "vacancy_touch"
}
