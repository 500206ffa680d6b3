package repositories

import (
	"gorm.io/gorm"

	"careercenter_backend/internal/models"
)

type AppointmentRepository interface {
	Create(appointment *models.Appointment) error
	FindByStudent(studentID string) ([]models.Appointment, error)
}

type AppointmentRepositoryImpl struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &AppointmentRepositoryImpl{db: db}
}

func (r *AppointmentRepositoryImpl) Create(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

func (r *AppointmentRepositoryImpl) FindByStudent(studentID string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("student_id = ?", studentID).
		Order("appointment_date ASC").
		Find(&appointments).Error
	return appointments, err
}
