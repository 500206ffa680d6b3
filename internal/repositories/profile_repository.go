package repositories

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"careercenter_backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

// StudentSearchFilter - критерии поиска кандидатов для компаний
type StudentSearchFilter struct {
	Skills         []string
	Major          string
	University     string
	GraduationFrom *int
	GraduationTo   *int
}

type ProfileRepository interface {
	CreateStudent(profile *models.StudentProfile) error
	FindStudentByUserID(userID string) (*models.StudentProfile, error)
	UpdateStudent(userID string, fields map[string]interface{}) (*models.StudentProfile, error)
	SearchStudents(filter StudentSearchFilter) ([]models.StudentProfile, error)
	FindStudentsByUserIDs(userIDs []string) ([]models.StudentProfile, error)

	CreateCompany(profile *models.CompanyProfile) error
	FindCompanyByUserID(userID string) (*models.CompanyProfile, error)
	UpdateCompany(userID string, fields map[string]interface{}) (*models.CompanyProfile, error)

	CreateUniversity(profile *models.UniversityProfile) error
	FindUniversityByUserID(userID string) (*models.UniversityProfile, error)
	UpdateUniversity(userID string, fields map[string]interface{}) (*models.UniversityProfile, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) CreateStudent(profile *models.StudentProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindStudentByUserID(userID string) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := r.db.Preload("User").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateStudent(userID string, fields map[string]interface{}) (*models.StudentProfile, error) {
	result := r.db.Model(&models.StudentProfile{}).
		Where("user_id = ?", userID).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProfileNotFound
	}
	return r.FindStudentByUserID(userID)
}

func (r *ProfileRepositoryImpl) SearchStudents(filter StudentSearchFilter) ([]models.StudentProfile, error) {
	query := r.db.Model(&models.StudentProfile{}).Preload("User")

	if len(filter.Skills) > 0 {
		// jsonb containment: профиль должен содержать все указанные навыки
		query = query.Where("skills @> ?", datatypes.JSONSlice[string](filter.Skills))
	}
	if filter.Major != "" {
		query = query.Where("major ILIKE ?", "%"+filter.Major+"%")
	}
	if filter.University != "" {
		query = query.Where("university ILIKE ?", "%"+filter.University+"%")
	}
	if filter.GraduationFrom != nil {
		query = query.Where("graduation_year >= ?", *filter.GraduationFrom)
	}
	if filter.GraduationTo != nil {
		query = query.Where("graduation_year <= ?", *filter.GraduationTo)
	}

	var profiles []models.StudentProfile
	err := query.Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) FindStudentsByUserIDs(userIDs []string) ([]models.StudentProfile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var profiles []models.StudentProfile
	err := r.db.Preload("User").
		Where("user_id IN ?", userIDs).
		Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) CreateCompany(profile *models.CompanyProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindCompanyByUserID(userID string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateCompany(userID string, fields map[string]interface{}) (*models.CompanyProfile, error) {
	result := r.db.Model(&models.CompanyProfile{}).
		Where("user_id = ?", userID).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProfileNotFound
	}
	return r.FindCompanyByUserID(userID)
}

func (r *ProfileRepositoryImpl) CreateUniversity(profile *models.UniversityProfile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindUniversityByUserID(userID string) (*models.UniversityProfile, error) {
	var profile models.UniversityProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateUniversity(userID string, fields map[string]interface{}) (*models.UniversityProfile, error) {
	result := r.db.Model(&models.UniversityProfile{}).
		Where("user_id = ?", userID).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProfileNotFound
	}
	return r.FindUniversityByUserID(userID)
}
