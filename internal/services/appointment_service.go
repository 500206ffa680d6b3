package services

import (
	"careercenter_backend/internal/models"
	"careercenter_backend/internal/repositories"
	"careercenter_backend/internal/services/dto"
	"careercenter_backend/pkg/apperrors"
	"gorm.io/gorm"
)

type AppointmentService interface {
	Create(callerID string, req *dto.CreateAppointmentRequest) (*models.Appointment, error)
	ListByStudent(studentID string) ([]models.Appointment, error)
}

type AppointmentServiceImpl struct {
	db              *gorm.DB
	appointmentRepo repositories.AppointmentRepository
}

func NewAppointmentService(db *gorm.DB, appointmentRepo repositories.AppointmentRepository) AppointmentService {
	return &AppointmentServiceImpl{db: db, appointmentRepo: appointmentRepo}
}

func (s *AppointmentServiceImpl) Create(callerID string, req *dto.CreateAppointmentRequest) (*models.Appointment, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}
	if req.StudentID != callerID {
		return nil, apperrors.ErrNotResourceOwner
	}

	appointment := &models.Appointment{
		StudentID:       req.StudentID,
		CompanyID:       req.CompanyID,
		AppointmentDate: req.AppointmentDate,
		AppointmentType: req.AppointmentType,
		Notes:           req.Notes,
		Status:          models.AppointmentStatusScheduled,
	}
	if err := s.appointmentRepo.Create(appointment); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return appointment, nil
}

func (s *AppointmentServiceImpl) ListByStudent(studentID string) ([]models.Appointment, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	appointments, err := s.appointmentRepo.FindByStudent(studentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	return appointments, nil
}
