package services

import (
	"errors"

	"careercenter_backend/internal/models"
	"careercenter_backend/internal/repositories"
	"careercenter_backend/internal/services/dto"
	"careercenter_backend/pkg/apperrors"
	"gorm.io/gorm"
)

type ProfileService interface {
	CreateStudentProfile(callerID string, req *dto.CreateStudentProfileRequest) (*dto.StudentProfileDTO, error)
	GetStudentProfile(userID string) (*dto.StudentProfileDTO, error)
	UpdateStudentProfile(callerID, userID string, req *dto.UpdateStudentProfileRequest) (*dto.StudentProfileDTO, error)

	CreateCompanyProfile(callerID string, req *dto.CreateCompanyProfileRequest) (*models.CompanyProfile, error)
	GetCompanyProfile(userID string) (*models.CompanyProfile, error)
	UpdateCompanyProfile(callerID, userID string, req *dto.UpdateCompanyProfileRequest) (*models.CompanyProfile, error)

	CreateUniversityProfile(callerID string, req *dto.CreateUniversityProfileRequest) (*models.UniversityProfile, error)
	GetUniversityProfile(userID string) (*models.UniversityProfile, error)
	UpdateUniversityProfile(callerID, userID string, req *dto.UpdateUniversityProfileRequest) (*models.UniversityProfile, error)
}

type ProfileServiceImpl struct {
	db          *gorm.DB
	profileRepo repositories.ProfileRepository
}

func NewProfileService(db *gorm.DB, profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{db: db, profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) CreateStudentProfile(callerID string, req *dto.CreateStudentProfileRequest) (*dto.StudentProfileDTO, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}
	if req.UserID != callerID {
		return nil, apperrors.ErrNotResourceOwner
	}

	profile := &models.StudentProfile{
		UserID:         req.UserID,
		University:     req.University,
		Major:          req.Major,
		GraduationYear: req.GraduationYear,
		Skills:         dto.ToJSONSlice(req.Skills),
		Bio:            req.Bio,
	}
	if err := s.profileRepo.CreateStudent(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.GetStudentProfile(req.UserID)
}

func (s *ProfileServiceImpl) GetStudentProfile(userID string) (*dto.StudentProfileDTO, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindStudentByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	d := dto.StudentProfileToDTO(profile)
	return &d, nil
}

func (s *ProfileServiceImpl) UpdateStudentProfile(callerID, userID string, req *dto.UpdateStudentProfileRequest) (*dto.StudentProfileDTO, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}
	if userID != callerID {
		return nil, apperrors.ErrNotResourceOwner
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	if _, err := s.profileRepo.UpdateStudent(userID, fields); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return s.GetStudentProfile(userID)
}

func (s *ProfileServiceImpl) CreateCompanyProfile(callerID string, req *dto.CreateCompanyProfileRequest) (*models.CompanyProfile, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}
	if req.UserID != callerID {
		return nil, apperrors.ErrNotResourceOwner
	}

	profile := &models.CompanyProfile{
		UserID:      req.UserID,
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		Description: req.Description,
		Website:     req.Website,
		Size:        req.Size,
	}
	if err := s.profileRepo.CreateCompany(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) GetCompanyProfile(userID string) (*models.CompanyProfile, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindCompanyByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateCompanyProfile(callerID, userID string, req *dto.UpdateCompanyProfileRequest) (*models.CompanyProfile, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}
	if userID != callerID {
		return nil, apperrors.ErrNotResourceOwner
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	profile, err := s.profileRepo.UpdateCompany(userID, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) CreateUniversityProfile(callerID string, req *dto.CreateUniversityProfileRequest) (*models.UniversityProfile, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}
	if req.UserID != callerID {
		return nil, apperrors.ErrNotResourceOwner
	}

	profile := &models.UniversityProfile{
		UserID:         req.UserID,
		UniversityName: req.UniversityName,
		Description:    req.Description,
		Website:        req.Website,
		ContactEmail:   req.ContactEmail,
	}
	if err := s.profileRepo.CreateUniversity(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) GetUniversityProfile(userID string) (*models.UniversityProfile, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindUniversityByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateUniversityProfile(callerID, userID string, req *dto.UpdateUniversityProfileRequest) (*models.UniversityProfile, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}
	if userID != callerID {
		return nil, apperrors.ErrNotResourceOwner
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	profile, err := s.profileRepo.UpdateUniversity(userID, fields)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
