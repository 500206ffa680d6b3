package services

import (
	"errors"
	"strconv"

	"careercenter_backend/internal/models"
	"careercenter_backend/internal/repositories"
	"careercenter_backend/internal/services/dto"
	"careercenter_backend/pkg/apperrors"
	"gorm.io/gorm"
)

type TouchService interface {
	Create(callerID string, req *dto.CreateTouchRequest) (*dto.CreateTouchResponse, error)
	CompanyResponses(companyID string) ([]dto.TouchRecord, error)
	VacancyWithResponses(callerID, vacancyID string) (map[string]interface{}, error)
}

type TouchServiceImpl struct {
	db          *gorm.DB
	touchRepo   repositories.TouchRepository
	vacancyRepo repositories.VacancyRepository
	resumeRepo  repositories.ResumeRepository
	profileRepo repositories.ProfileRepository
}

func NewTouchService(
	db *gorm.DB,
	touchRepo repositories.TouchRepository,
	vacancyRepo repositories.VacancyRepository,
	resumeRepo repositories.ResumeRepository,
	profileRepo repositories.ProfileRepository,
) TouchService {
	return &TouchServiceImpl{
		db:          db,
		touchRepo:   touchRepo,
		vacancyRepo: vacancyRepo,
		resumeRepo:  resumeRepo,
		profileRepo: profileRepo,
	}
}

func (s *TouchServiceImpl) Create(callerID string, req *dto.CreateTouchRequest) (*dto.CreateTouchResponse, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}
	if req.StudentID != callerID {
		return nil, apperrors.ErrNotResourceOwner
	}

	touch := &models.VacancyTouch{
		VacancyID:      req.VacancyID,
		StudentID:      req.StudentID,
		ResumeID:       req.ResumeID,
		AdditionalInfo: req.AdditionalInfo,
		Status:         models.TouchStatusPending,
	}
	if err := s.touchRepo.Create(touch); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.CreateTouchResponse{
		Data: touch,
		FeedbackMessage: dto.FeedbackMessage{
			Type:  "popup",
			Title: "Отклик отправлен!",
			Text:  "Ваш отклик на вакансию успешно отправлен. Ждите ответа от работодателя.",
		},
	}, nil
}

// CompanyResponses - все отклики по вакансиям компании с вложенными
// профилем студента, резюме и названием вакансии
func (s *TouchServiceImpl) CompanyResponses(companyID string) ([]dto.TouchRecord, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	vacancyIDs, err := s.vacancyRepo.IDsByCompany(companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(vacancyIDs) == 0 {
		return []dto.TouchRecord{}, nil
	}

	rows, err := s.touchRepo.FindRawByVacancyIDs(vacancyIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	records := make([]dto.TouchRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, normalizeTouchRecord(row))
	}
	if err := s.attachRelations(records, true); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return records, nil
}

// VacancyWithResponses - вакансия целиком плюс отклики под ключом
// vacancy_touch, как того ждёт фронтенд
func (s *TouchServiceImpl) VacancyWithResponses(callerID, vacancyID string) (map[string]interface{}, error) {
	if err := requireDB(s.db); err != nil {
		return nil, err
	}

	vacancy, err := s.vacancyRepo.FindByID(vacancyID)
	if err != nil {
		if errors.Is(err, repositories.ErrVacancyNotFound) {
			return nil, apperrors.ErrVacancyNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if vacancy.CompanyID != callerID {
		return nil, apperrors.ErrVacancyNotOwned
	}

	rows, err := s.touchRepo.FindRawByVacancyIDs([]string{vacancyID})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	records := make([]dto.TouchRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, normalizeTouchRecord(row))
	}
	if err := s.attachRelations(records, false); err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := map[string]interface{}{
		"id":              vacancy.ID,
		"company_id":      vacancy.CompanyID,
		"title":           vacancy.Title,
		"description":     vacancy.Description,
		"requirements":    vacancy.Requirements,
		"salary_range":    vacancy.SalaryRange,
		"location":        vacancy.Location,
		"employment_type": vacancy.EmploymentType,
		"is_internship":   vacancy.IsInternship,
		"status":          vacancy.Status,
		"created_at":      vacancy.CreatedAt,
		"updated_at":      vacancy.UpdatedAt,
		"vacancy_touch":   records,
	}
	return result, nil
}

// attachRelations дополняет отклики вложенными student_profiles,
// resumes и (опционально) vacancies одной пачкой запросов
func (s *TouchServiceImpl) attachRelations(records []dto.TouchRecord, withVacancyTitle bool) error {
	if len(records) == 0 {
		return nil
	}

	studentIDs := make([]string, 0, len(records))
	resumeIDs := make([]string, 0, len(records))
	vacancyIDs := make([]string, 0, len(records))
	for _, rec := range records {
		if id, ok := rec["student_id"].(string); ok && id != "" {
			studentIDs = append(studentIDs, id)
		}
		if id, ok := rec["resume_id"].(string); ok && id != "" {
			resumeIDs = append(resumeIDs, id)
		}
		if id, ok := rec["vacancy_id"].(string); ok && id != "" {
			vacancyIDs = append(vacancyIDs, id)
		}
	}

	profiles, err := s.profileRepo.FindStudentsByUserIDs(studentIDs)
	if err != nil {
		return err
	}
	profileByUser := make(map[string]*models.StudentProfile, len(profiles))
	for i := range profiles {
		profileByUser[profiles[i].UserID] = &profiles[i]
	}

	resumes, err := s.resumeRepo.FindByIDs(resumeIDs)
	if err != nil {
		return err
	}
	resumeByID := make(map[string]*models.Resume, len(resumes))
	for i := range resumes {
		resumeByID[resumes[i].ID] = &resumes[i]
	}

	var vacancyByID map[string]*models.Vacancy
	if withVacancyTitle {
		vacancies, err := s.vacancyRepo.FindByIDs(vacancyIDs)
		if err != nil {
			return err
		}
		vacancyByID = make(map[string]*models.Vacancy, len(vacancies))
		for i := range vacancies {
			vacancyByID[vacancies[i].ID] = &vacancies[i]
		}
	}

	for _, rec := range records {
		rec["student_profiles"] = nil
		if id, ok := rec["student_id"].(string); ok {
			if profile, found := profileByUser[id]; found {
				rec["student_profiles"] = studentProfileRecord(profile)
			}
		}

		rec["resumes"] = nil
		if id, ok := rec["resume_id"].(string); ok {
			if resume, found := resumeByID[id]; found {
				rec["resumes"] = resumeRecord(resume)
			}
		}

		if withVacancyTitle {
			rec["vacancies"] = nil
			if id, ok := rec["vacancy_id"].(string); ok {
				if vacancy, found := vacancyByID[id]; found {
					rec["vacancies"] = map[string]interface{}{"title": vacancy.Title}
				}
			}
		}
	}
	return nil
}

func studentProfileRecord(profile *models.StudentProfile) map[string]interface{} {
	record := map[string]interface{}{
		"id":              profile.ID,
		"user_id":         profile.UserID,
		"university":      profile.University,
		"major":           profile.Major,
		"graduation_year": profile.GraduationYear,
		"skills":          []string(profile.Skills),
		"bio":             profile.Bio,
		"created_at":      profile.CreatedAt,
		"updated_at":      profile.UpdatedAt,
	}
	if profile.User != nil {
		record["users"] = map[string]interface{}{
			"full_name": profile.User.FullName,
			"email":     profile.User.Email,
		}
	}
	return record
}

func resumeRecord(resume *models.Resume) map[string]interface{} {
	return map[string]interface{}{
		"id":           resume.ID,
		"student_id":   resume.StudentID,
		"title":        resume.Title,
		"education":    resume.Education,
		"experience":   resume.Experience,
		"skills":       []string(resume.Skills),
		"languages":    []string(resume.Languages),
		"achievements": resume.Achievements,
		"content":      resume.Content,
		"created_at":   resume.CreatedAt,
		"updated_at":   resume.UpdatedAt,
	}
}

// normalizeTouchRecord сводит унаследованные варианты имён AI-колонок
// к каноническим и приводит строковые рейтинги к числам. Значения,
// которые не приводятся, остаются как есть.
func normalizeTouchRecord(record map[string]interface{}) dto.TouchRecord {
	if _, ok := record["ai_summary"]; !ok {
		if v, found := record["ai_summery"]; found {
			record["ai_summary"] = v
		}
	}

	if _, ok := record["motivation_rating"]; !ok {
		if v, found := record["motivation_score"]; found {
			record["motivation_rating"] = v
		} else if v, found := record["motivation"]; found {
			record["motivation_rating"] = v
		}
	}

	if _, ok := record["meets_criteria_rating"]; !ok {
		if v, found := record["meets_creteria_rating"]; found {
			record["meets_criteria_rating"] = v
		} else if v, found := record["meets_criteria"]; found {
			record["meets_criteria_rating"] = v
		}
	}

	for _, field := range []string{"motivation_rating", "meets_criteria_rating"} {
		value, ok := record[field]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			if parsed, err := strconv.Atoi(v); err == nil {
				record[field] = parsed
			}
		case float64:
			record[field] = int(v)
		case int64:
			record[field] = int(v)
		case int32:
			record[field] = int(v)
		}
	}

	return record
}
