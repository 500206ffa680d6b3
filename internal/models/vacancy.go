package models

type Vacancy struct {
	BaseModel
	CompanyID      string        `gorm:"type:uuid;not null;index" json:"company_id"`
	Title          string        `gorm:"not null" json:"title"`
	Description    string        `gorm:"not null" json:"description"`
	Requirements   string        `json:"requirements,omitempty"`
	SalaryRange    string        `json:"salary_range,omitempty"`
	Location       string        `json:"location,omitempty"`
	EmploymentType string        `gorm:"not null" json:"employment_type"`
	IsInternship   bool          `gorm:"default:false" json:"is_internship"`
	Status         VacancyStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	Company *User          `gorm:"foreignKey:CompanyID" json:"-"`
	Touches []VacancyTouch `gorm:"foreignKey:VacancyID" json:"-"`
}
