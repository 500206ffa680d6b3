package services

import (
	"strings"

	"careercenter_backend/internal/repositories"
	"careercenter_backend/internal/services/dto"
	"careercenter_backend/pkg/apperrors"
	"gorm.io/gorm"
)

const noAdditionalInfoText = "соискатель не указал дополнительной информации"

type SearchService interface {
	SearchCandidates(companyID string, req *dto.SearchCandidatesRequest) ([]dto.CandidateDTO, error)
}

type SearchServiceImpl struct {
	db          *gorm.DB
	profileRepo repositories.ProfileRepository
	vacancyRepo repositories.VacancyRepository
	touchRepo   repositories.TouchRepository
}

func NewSearchService(
	db *gorm.DB,
	profileRepo repositories.ProfileRepository,
	vacancyRepo repositories.VacancyRepository,
	touchRepo repositories.TouchRepository,
) SearchService {
	return &SearchServiceImpl{
		db:          db,
		profileRepo: profileRepo,
		vacancyRepo: vacancyRepo,
		touchRepo:   touchRepo,
	}
}

// SearchCandidates ищет студентов по фильтрам и дополняет каждого
// откликами на вакансии запрашивающей компании
func (s *SearchServiceImpl) SearchCandidates(companyID string, req *dto.SearchCandidatesRequest) ([]dto.CandidateDTO, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	filter := repositories.StudentSearchFilter{
		Skills:         splitSkills(req.Skills),
		Major:          req.Major,
		University:     req.University,
		GraduationFrom: req.GradYearFrom,
		GraduationTo:   req.GradYearTo,
	}

	profiles, err := s.profileRepo.SearchStudents(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(profiles) == 0 {
		return []dto.CandidateDTO{}, nil
	}

	candidates := make([]dto.CandidateDTO, 0, len(profiles))
	candidateIDs := make([]string, 0, len(profiles))
	for i := range profiles {
		candidates = append(candidates, dto.CandidateFromProfile(&profiles[i]))
		candidateIDs = append(candidateIDs, profiles[i].UserID)
	}

	vacancyIDs, err := s.vacancyRepo.IDsByCompany(companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(vacancyIDs) == 0 {
		return candidates, nil
	}

	rows, err := s.touchRepo.FindRawByStudentsAndVacancies(candidateIDs, vacancyIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	vacancies, err := s.vacancyRepo.FindByIDs(vacancyIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	titleByID := make(map[string]string, len(vacancies))
	for i := range vacancies {
		titleByID[vacancies[i].ID] = vacancies[i].Title
	}

	responsesByStudent := make(map[string][]dto.TouchRecord)
	for _, row := range rows {
		studentID, _ := row["student_id"].(string)
		vacancyID, _ := row["vacancy_id"].(string)

		title, found := titleByID[vacancyID]
		if !found {
			title = "Unknown"
		}
		info, _ := row["additional_info"].(string)
		if info == "" {
			info = noAdditionalInfoText
		}

		responsesByStudent[studentID] = append(responsesByStudent[studentID], dto.TouchRecord{
			"vacancy_id":      vacancyID,
			"vacancy_title":   title,
			"additional_info": info,
		})
	}

	for i := range candidates {
		if responses, found := responsesByStudent[candidates[i].UserID]; found {
			candidates[i].MyCompanyResponses = responses
		}
	}
	return candidates, nil
}

func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
