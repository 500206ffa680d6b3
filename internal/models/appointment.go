package models

import "time"

type Appointment struct {
	BaseModel
	StudentID       string            `gorm:"type:uuid;not null;index" json:"student_id"`
	CompanyID       *string           `gorm:"type:uuid" json:"company_id,omitempty"`
	AppointmentDate time.Time         `gorm:"not null" json:"appointment_date"`
	AppointmentType string            `gorm:"not null" json:"appointment_type"`
	Notes           string            `json:"notes,omitempty"`
	Status          AppointmentStatus `gorm:"type:varchar(20);default:'scheduled'" json:"status"`
}
