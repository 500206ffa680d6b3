package repositories

import (
	"errors"

	"gorm.io/gorm"

	"careercenter_backend/internal/models"
)

var ErrVacancyNotFound = errors.New("vacancy not found")

// VacancyListFilter - фильтры публичного списка активных вакансий
type VacancyListFilter struct {
	EmploymentType string
	IsInternship   *bool
	Limit          int
}

type VacancyRepository interface {
	Create(vacancy *models.Vacancy) error
	FindByID(id string) (*models.Vacancy, error)
	FindByIDs(ids []string) ([]models.Vacancy, error)
	FindActive(filter VacancyListFilter) ([]models.Vacancy, error)
	FindByCompany(companyID string) ([]models.Vacancy, error)
	FindByStatus(status string) ([]models.Vacancy, error)
	FindAll() ([]models.Vacancy, error)
	IDsByCompany(companyID string) ([]string, error)
	TouchCountsByVacancy(vacancyIDs []string) (map[string]int64, error)
	Update(id string, fields map[string]interface{}) (*models.Vacancy, error)
	UpdateStatus(id string, status string) (*models.Vacancy, error)
	Delete(id string) error
	CountByStatus() (map[string]int64, error)
	CountAll() (int64, error)
}

type VacancyRepositoryImpl struct {
	db *gorm.DB
}

func NewVacancyRepository(db *gorm.DB) VacancyRepository {
	return &VacancyRepositoryImpl{db: db}
}

func (r *VacancyRepositoryImpl) Create(vacancy *models.Vacancy) error {
	return r.db.Create(vacancy).Error
}

func (r *VacancyRepositoryImpl) FindByID(id string) (*models.Vacancy, error) {
	var vacancy models.Vacancy
	// Карточка вакансии несёт и описание компании, поэтому
	// профиль подтягивается вместе с пользователем
	err := r.db.Preload("Company").
		Preload("Company.CompanyProfile").
		First(&vacancy, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVacancyNotFound
		}
		return nil, err
	}
	return &vacancy, nil
}

func (r *VacancyRepositoryImpl) FindByIDs(ids []string) ([]models.Vacancy, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var vacancies []models.Vacancy
	err := r.db.Preload("Company").Where("id IN ?", ids).Find(&vacancies).Error
	return vacancies, err
}

func (r *VacancyRepositoryImpl) FindActive(filter VacancyListFilter) ([]models.Vacancy, error) {
	query := r.db.Preload("Company").
		Where("status = ?", models.VacancyStatusActive)

	if filter.EmploymentType != "" {
		query = query.Where("employment_type = ?", filter.EmploymentType)
	}
	if filter.IsInternship != nil {
		query = query.Where("is_internship = ?", *filter.IsInternship)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	var vacancies []models.Vacancy
	err := query.Order("created_at DESC").Limit(limit).Find(&vacancies).Error
	return vacancies, err
}

func (r *VacancyRepositoryImpl) FindByCompany(companyID string) ([]models.Vacancy, error) {
	var vacancies []models.Vacancy
	err := r.db.Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&vacancies).Error
	return vacancies, err
}

func (r *VacancyRepositoryImpl) FindByStatus(status string) ([]models.Vacancy, error) {
	var vacancies []models.Vacancy
	err := r.db.Preload("Company").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&vacancies).Error
	return vacancies, err
}

func (r *VacancyRepositoryImpl) FindAll() ([]models.Vacancy, error) {
	var vacancies []models.Vacancy
	err := r.db.Preload("Company").
		Order("created_at DESC").
		Find(&vacancies).Error
	return vacancies, err
}

func (r *VacancyRepositoryImpl) IDsByCompany(companyID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Vacancy{}).
		Where("company_id = ?", companyID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *VacancyRepositoryImpl) TouchCountsByVacancy(vacancyIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(vacancyIDs))
	if len(vacancyIDs) == 0 {
		return counts, nil
	}

	type row struct {
		VacancyID string
		Total     int64
	}
	var rows []row
	err := r.db.Model(&models.VacancyTouch{}).
		Select("vacancy_id, COUNT(*) AS total").
		Where("vacancy_id IN ?", vacancyIDs).
		Group("vacancy_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, rw := range rows {
		counts[rw.VacancyID] = rw.Total
	}
	return counts, nil
}

func (r *VacancyRepositoryImpl) Update(id string, fields map[string]interface{}) (*models.Vacancy, error) {
	result := r.db.Model(&models.Vacancy{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrVacancyNotFound
	}
	return r.FindByID(id)
}

func (r *VacancyRepositoryImpl) UpdateStatus(id string, status string) (*models.Vacancy, error) {
	return r.Update(id, map[string]interface{}{"status": status})
}

func (r *VacancyRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Vacancy{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVacancyNotFound
	}
	return nil
}

func (r *VacancyRepositoryImpl) CountByStatus() (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	err := r.db.Model(&models.Vacancy{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Total
	}
	return counts, nil
}

func (r *VacancyRepositoryImpl) CountAll() (int64, error) {
	var total int64
	err := r.db.Model(&models.Vacancy{}).Count(&total).Error
	return total, err
}
