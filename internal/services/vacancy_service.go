package services

import (
	"errors"
	"fmt"

	"careercenter_backend/internal/models"
	"careercenter_backend/internal/repositories"
	"careercenter_backend/internal/services/dto"
	"careercenter_backend/pkg/apperrors"
	"gorm.io/gorm"
)

type VacancyService interface {
	Create(callerID string, req *dto.CreateVacancyRequest) (*dto.CreateVacancyResponse, error)
	List(req *dto.ListVacanciesRequest) ([]dto.VacancyDTO, error)
	GetByID(id string) (*dto.VacancyDTO, error)
	ListMine(companyID string) ([]dto.MyVacancyDTO, error)
}

type VacancyServiceImpl struct {
	db          *gorm.DB
	vacancyRepo repositories.VacancyRepository
}

func NewVacancyService(db *gorm.DB, vacancyRepo repositories.VacancyRepository) VacancyService {
	return &VacancyServiceImpl{db: db, vacancyRepo: vacancyRepo}
}

func (s *VacancyServiceImpl) Create(callerID string, req *dto.CreateVacancyRequest) (*dto.CreateVacancyResponse, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}
	if req.CompanyID != callerID {
		return nil, apperrors.ErrNotResourceOwner
	}

	vacancy := &models.Vacancy{
		CompanyID:      req.CompanyID,
		Title:          req.Title,
		Description:    req.Description,
		Requirements:   req.Requirements,
		SalaryRange:    req.SalaryRange,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		IsInternship:   req.IsInternship,
		// Любая новая вакансия проходит модерацию
		Status: models.VacancyStatusPending,
	}
	if err := s.vacancyRepo.Create(vacancy); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreateVacancyResponse{
		Data: dto.VacancyToDTO(vacancy),
		FeedbackMessage: dto.FeedbackMessage{
			Type:  "popup",
			Title: "Вакансия отправлена на модерацию!",
			Text:  fmt.Sprintf("Спасибо! Ваша вакансия «%s» успешно создана и будет опубликована после проверки модератором.", vacancy.Title),
		},
	}, nil
}

func (s *VacancyServiceImpl) List(req *dto.ListVacanciesRequest) ([]dto.VacancyDTO, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	vacancies, err := s.vacancyRepo.FindActive(repositories.VacancyListFilter{
		EmploymentType: req.EmploymentType,
		IsInternship:   req.IsInternship,
		Limit:          req.Limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return vacanciesToDTOs(vacancies), nil
}

func (s *VacancyServiceImpl) GetByID(id string) (*dto.VacancyDTO, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	vacancy, err := s.vacancyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrVacancyNotFound) {
			return nil, apperrors.ErrVacancyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	d := dto.VacancyToDTO(vacancy)
	return &d, nil
}

// ListMine - вакансии компании с количеством откликов по каждой
func (s *VacancyServiceImpl) ListMine(companyID string) ([]dto.MyVacancyDTO, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	vacancies, err := s.vacancyRepo.FindByCompany(companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := make([]string, 0, len(vacancies))
	for _, v := range vacancies {
		ids = append(ids, v.ID)
	}
	counts, err := s.vacancyRepo.TouchCountsByVacancy(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.MyVacancyDTO, 0, len(vacancies))
	for i := range vacancies {
		result = append(result, dto.MyVacancyDTO{
			VacancyDTO:    dto.VacancyToDTO(&vacancies[i]),
			ResponseCount: counts[vacancies[i].ID],
		})
	}
	return result, nil
}

func vacanciesToDTOs(vacancies []models.Vacancy) []dto.VacancyDTO {
	result := make([]dto.VacancyDTO, 0, len(vacancies))
	for i := range vacancies {
		result = append(result, dto.VacancyToDTO(&vacancies[i]))
	}
	return result
}
