package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	FullName     string   `gorm:"not null" json:"full_name"`
	UserType     UserType `gorm:"type:varchar(20);not null" json:"user_type"`

	// Заполняются только для user_type = company
	CompanyName    string `json:"company_name,omitempty"`
	INN            string `gorm:"column:inn" json:"inn,omitempty"`
	CompanyWebsite string `json:"company_website,omitempty"`

	// Relations
	StudentProfile    *StudentProfile    `gorm:"foreignKey:UserID" json:"-"`
	CompanyProfile    *CompanyProfile    `gorm:"foreignKey:UserID" json:"-"`
	UniversityProfile *UniversityProfile `gorm:"foreignKey:UserID" json:"-"`
}
