package services

import (
	"errors"

	"careercenter_backend/internal/models"
	"careercenter_backend/internal/repositories"
	"careercenter_backend/internal/services/dto"
	"careercenter_backend/pkg/apperrors"
	"gorm.io/gorm"
)

type ResumeService interface {
	Create(callerID string, req *dto.CreateResumeRequest) (*models.Resume, error)
	Update(callerID, resumeID string, req *dto.UpdateResumeRequest) (*models.Resume, error)
	ListByStudent(studentID string) ([]models.Resume, error)
}

type ResumeServiceImpl struct {
	db         *gorm.DB
	resumeRepo repositories.ResumeRepository
}

func NewResumeService(db *gorm.DB, resumeRepo repositories.ResumeRepository) ResumeService {
	return &ResumeServiceImpl{db: db, resumeRepo: resumeRepo}
}

func (s *ResumeServiceImpl) Create(callerID string, req *dto.CreateResumeRequest) (*models.Resume, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}
	if req.StudentID != callerID {
		return nil, apperrors.ErrNotResourceOwner
	}

	resume := &models.Resume{
		StudentID:    req.StudentID,
		Title:        req.Title,
		Education:    req.Education,
		Experience:   req.Experience,
		Skills:       dto.ToJSONSlice(req.Skills),
		Languages:    dto.ToJSONSlice(req.Languages),
		Achievements: req.Achievements,
		Content:      req.Content,
	}
	if err := s.resumeRepo.Create(resume); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return resume, nil
}

func (s *ResumeServiceImpl) Update(callerID, resumeID string, req *dto.UpdateResumeRequest) (*models.Resume, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	existing, err := s.resumeRepo.FindByID(resumeID)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return nil, apperrors.ErrResumeNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if existing.StudentID != callerID {
		return nil, apperrors.ErrNotResourceOwner
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	resume, err := s.resumeRepo.Update(resumeID, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return nil, apperrors.ErrResumeNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return resume, nil
}

func (s *ResumeServiceImpl) ListByStudent(studentID string) ([]models.Resume, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	resumes, err := s.resumeRepo.FindByStudent(studentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if resumes == nil {
		resumes = []models.Resume{}
	}
	return resumes, nil
}
