package services

import (
	"errors"

	"careercenter_backend/internal/models"
	"careercenter_backend/internal/repositories"
	"careercenter_backend/internal/services/dto"
	"careercenter_backend/pkg/apperrors"
	"gorm.io/gorm"
)

// DetailedAnalytics - сводка для панели модератора.
// Карты заполняются нулями по всем известным значениям.
type DetailedAnalytics struct {
	UsersByType       map[string]int64 `json:"users_by_type"`
	VacanciesByStatus map[string]int64 `json:"vacancies_by_status"`
	TotalUsers        int64            `json:"total_users"`
	TotalVacancies    int64            `json:"total_vacancies"`
}

type ModeratorService interface {
	ListUsers() ([]repositories.PublicUser, error)
	ListUniversities() ([]repositories.PublicUser, error)
	ListVacancies(status string) ([]dto.VacancyDTO, error)
	ApproveVacancy(id string) (*dto.VacancyDTO, error)
	RejectVacancy(id string) (*dto.VacancyDTO, error)
	DeleteVacancy(id string) error
	Analytics() (*DetailedAnalytics, error)
}

type ModeratorServiceImpl struct {
	db          *gorm.DB
	userRepo    repositories.UserRepository
	vacancyRepo repositories.VacancyRepository
}

func NewModeratorService(db *gorm.DB, userRepo repositories.UserRepository, vacancyRepo repositories.VacancyRepository) ModeratorService {
	return &ModeratorServiceImpl{db: db, userRepo: userRepo, vacancyRepo: vacancyRepo}
}

func (s *ModeratorServiceImpl) ListUsers() ([]repositories.PublicUser, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindAllPublic()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if users == nil {
		users = []repositories.PublicUser{}
	}
	return users, nil
}

func (s *ModeratorServiceImpl) ListUniversities() ([]repositories.PublicUser, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindPublicByType(string(models.UserTypeUniversity))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if users == nil {
		users = []repositories.PublicUser{}
	}
	return users, nil
}

func (s *ModeratorServiceImpl) ListVacancies(status string) ([]dto.VacancyDTO, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}
	// Без фильтра отдаются вакансии всех статусов: дашборд
	// модератора фильтрует их на своей стороне
	var (
		vacancies []models.Vacancy
		err       error
	)
	if status == "" {
		vacancies, err = s.vacancyRepo.FindAll()
	} else {
		vacancies, err = s.vacancyRepo.FindByStatus(status)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return vacanciesToDTOs(vacancies), nil
}

// Смена статуса вакансии доступна только модератору: это
// единственный путь из pending в active/rejected
func (s *ModeratorServiceImpl) setStatus(id string, status models.VacancyStatus) (*dto.VacancyDTO, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	vacancy, err := s.vacancyRepo.UpdateStatus(id, string(status))
	if err != nil {
		if errors.Is(err, repositories.ErrVacancyNotFound) {
			return nil, apperrors.ErrVacancyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	d := dto.VacancyToDTO(vacancy)
	return &d, nil
}

func (s *ModeratorServiceImpl) ApproveVacancy(id string) (*dto.VacancyDTO, error) {
	return s.setStatus(id, models.VacancyStatusActive)
}

func (s *ModeratorServiceImpl) RejectVacancy(id string) (*dto.VacancyDTO, error) {
	return s.setStatus(id, models.VacancyStatusRejected)
}

func (s *ModeratorServiceImpl) DeleteVacancy(id string) error {
	if err := requireDB(s.db); err != nil {
		return err
	}

	if err := s.vacancyRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrVacancyNotFound) {
			return apperrors.ErrVacancyNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ModeratorServiceImpl) Analytics() (*DetailedAnalytics, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	usersByType, err := s.userRepo.CountByType()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	vacanciesByStatus, err := s.vacancyRepo.CountByStatus()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalUsers, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	totalVacancies, err := s.vacancyRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := &DetailedAnalytics{
		UsersByType: map[string]int64{
			string(models.UserTypeStudent):    0,
			string(models.UserTypeCompany):    0,
			string(models.UserTypeUniversity): 0,
			string(models.UserTypeModerator):  0,
		},
		VacanciesByStatus: map[string]int64{
			string(models.VacancyStatusPending):  0,
			string(models.VacancyStatusActive):   0,
			string(models.VacancyStatusRejected): 0,
			string(models.VacancyStatusArchived): 0,
		},
		TotalUsers:     totalUsers,
		TotalVacancies: totalVacancies,
	}
	for userType, count := range usersByType {
		result.UsersByType[userType] = count
	}
	for status, count := range vacanciesByStatus {
		result.VacanciesByStatus[status] = count
	}
	return result, nil
}
