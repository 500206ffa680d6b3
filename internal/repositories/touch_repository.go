package repositories

import (
	"errors"

	"gorm.io/gorm"

	"careercenter_backend/internal/models"
)

var ErrTouchNotFound = errors.New("touch not found")

type TouchRepository interface {
	Create(touch *models.VacancyTouch) error
	FindByID(id string) (*models.VacancyTouch, error)
	FindByIDWithLinks(id string) (*models.VacancyTouch, error)
	FindRawByVacancyIDs(vacancyIDs []string) ([]map[string]interface{}, error)
	FindRawByStudentsAndVacancies(studentIDs, vacancyIDs []string) ([]map[string]interface{}, error)
	UpdateAIFields(id string, summary string, meetsCriteria int, motivation int) error
}

type TouchRepositoryImpl struct {
	db *gorm.DB
}

func NewTouchRepository(db *gorm.DB) TouchRepository {
	return &TouchRepositoryImpl{db: db}
}

func (r *TouchRepositoryImpl) Create(touch *models.VacancyTouch) error {
	return r.db.Create(touch).Error
}

func (r *TouchRepositoryImpl) FindByID(id string) (*models.VacancyTouch, error) {
	var touch models.VacancyTouch
	err := r.db.First(&touch, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTouchNotFound
		}
		return nil, err
	}
	return &touch, nil
}

// FindByIDWithLinks подгружает вакансию и резюме отклика для AI-анализа
func (r *TouchRepositoryImpl) FindByIDWithLinks(id string) (*models.VacancyTouch, error) {
	var touch models.VacancyTouch
	err := r.db.Preload("Vacancy").Preload("Resume").
		First(&touch, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTouchNotFound
		}
		return nil, err
	}
	return &touch, nil
}

// Отклики читаются как сырые map'ы: в проде таблица жила с разными
// вариантами имён AI-колонок, нормализация выполняется на уровне сервиса.
func (r *TouchRepositoryImpl) findRaw(query *gorm.DB) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	err := query.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *TouchRepositoryImpl) FindRawByVacancyIDs(vacancyIDs []string) ([]map[string]interface{}, error) {
	if len(vacancyIDs) == 0 {
		return nil, nil
	}
	return r.findRaw(r.db.Table("vacancy_touch").Where("vacancy_id IN ?", vacancyIDs))
}

func (r *TouchRepositoryImpl) FindRawByStudentsAndVacancies(studentIDs, vacancyIDs []string) ([]map[string]interface{}, error) {
	if len(studentIDs) == 0 || len(vacancyIDs) == 0 {
		return nil, nil
	}
	return r.findRaw(r.db.Table("vacancy_touch").
		Where("student_id IN ? AND vacancy_id IN ?", studentIDs, vacancyIDs))
}

func (r *TouchRepositoryImpl) UpdateAIFields(id string, summary string, meetsCriteria int, motivation int) error {
	result := r.db.Model(&models.VacancyTouch{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"ai_summary":            summary,
			"meets_criteria_rating": meetsCriteria,
			"motivation_rating":     motivation,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTouchNotFound
	}
	return nil
}
