package services

import (
	"context"
	"database/sql"
	"time"

	"careercenter_backend/internal/models"
	"careercenter_backend/internal/repositories"
	"careercenter_backend/internal/services/dto"
	"careercenter_backend/pkg/apperrors"
)

type AnalyticsService interface {
	Overview(ctx context.Context) (*repositories.OverviewStats, error)
	VacancyStatsByTime(ctx context.Context, req *dto.TimeSeriesRequest) ([]repositories.TimeSeriesPoint, error)
	UserStatsByTime(ctx context.Context, req *dto.TimeSeriesRequest) ([]repositories.TimeSeriesPoint, error)
	CompanyActivity(ctx context.Context, limit int) ([]repositories.CompanyTouchStat, error)
	WordCloud(ctx context.Context, limit int) ([]repositories.SkillStat, error)
}

type AnalyticsServiceImpl struct {
	sqlDB         *sql.DB
	analyticsRepo repositories.AnalyticsRepository
}

func NewAnalyticsService(sqlDB *sql.DB, analyticsRepo repositories.AnalyticsRepository) AnalyticsService {
	return &AnalyticsServiceImpl{sqlDB: sqlDB, analyticsRepo: analyticsRepo}
}

func (s *AnalyticsServiceImpl) requireDB() error {
	if s.sqlDB == nil {
		return apperrors.ErrDatabaseNotConfigured
	}
	return nil
}

func (s *AnalyticsServiceImpl) Overview(ctx context.Context) (*repositories.OverviewStats, error) {
	if err := s.requireDB(); err != nil {
		return nil, err
	}

	stats, err := s.analyticsRepo.Overview(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}

// timeSeriesRange подставляет значения по умолчанию: день и
// последние 30 дней
func timeSeriesRange(req *dto.TimeSeriesRequest) (string, time.Time, time.Time) {
	granularity := req.Granularity
	if granularity == "" {
		granularity = string(models.GranularityDay)
	}

	to := time.Now()
	if req.EndDate != nil {
		to = *req.EndDate
	}
	from := to.AddDate(0, 0, -30)
	if req.StartDate != nil {
		from = *req.StartDate
	}
	return granularity, from, to
}

func (s *AnalyticsServiceImpl) VacancyStatsByTime(ctx context.Context, req *dto.TimeSeriesRequest) ([]repositories.TimeSeriesPoint, error) {
	if err := s.requireDB(); err != nil {
		return nil, err
	}

	granularity, from, to := timeSeriesRange(req)
	points, err := s.analyticsRepo.VacancyCreationStats(ctx, granularity, from, to)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return points, nil
}

func (s *AnalyticsServiceImpl) UserStatsByTime(ctx context.Context, req *dto.TimeSeriesRequest) ([]repositories.TimeSeriesPoint, error) {
	if err := s.requireDB(); err != nil {
		return nil, err
	}

	granularity, from, to := timeSeriesRange(req)
	points, err := s.analyticsRepo.StudentRegistrationStats(ctx, granularity, from, to)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return points, nil
}

func (s *AnalyticsServiceImpl) CompanyActivity(ctx context.Context, limit int) ([]repositories.CompanyTouchStat, error) {
	if err := s.requireDB(); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 10
	}
	stats, err := s.analyticsRepo.VacancyTouchStatsByCompany(ctx, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}

func (s *AnalyticsServiceImpl) WordCloud(ctx context.Context, limit int) ([]repositories.SkillStat, error) {
	if err := s.requireDB(); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 50
	}
	stats, err := s.analyticsRepo.ResumeSkillStats(ctx, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}
