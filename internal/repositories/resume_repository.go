package repositories

import (
	"errors"

	"gorm.io/gorm"

	"careercenter_backend/internal/models"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	Create(resume *models.Resume) error
	FindByID(id string) (*models.Resume, error)
	FindByStudent(studentID string) ([]models.Resume, error)
	FindByIDs(ids []string) ([]models.Resume, error)
	Update(id string, fields map[string]interface{}) (*models.Resume, error)
}

type ResumeRepositoryImpl struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &ResumeRepositoryImpl{db: db}
}

func (r *ResumeRepositoryImpl) Create(resume *models.Resume) error {
	return r.db.Create(resume).Error
}

func (r *ResumeRepositoryImpl) FindByID(id string) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.First(&resume, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepositoryImpl) FindByStudent(studentID string) ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&resumes).Error
	return resumes, err
}

func (r *ResumeRepositoryImpl) FindByIDs(ids []string) ([]models.Resume, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var resumes []models.Resume
	err := r.db.Where("id IN ?", ids).Find(&resumes).Error
	return resumes, err
}

func (r *ResumeRepositoryImpl) Update(id string, fields map[string]interface{}) (*models.Resume, error) {
	result := r.db.Model(&models.Resume{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrResumeNotFound
	}
	return r.FindByID(id)
}
