package repositories

import (
	"context"
	"database/sql"
	"time"
)

// TimeSeriesPoint - одна точка агрегированной статистики по периоду
type TimeSeriesPoint struct {
	Period time.Time `json:"period"`
	Count  int64     `json:"count"`
}

type CompanyTouchStat struct {
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	TouchCount  int64  `json:"touch_count"`
}

type SkillStat struct {
	Skill string `json:"skill"`
	Count int64  `json:"count"`
}

type OverviewStats struct {
	TotalStudents     int64 `json:"total_students"`
	TotalCompanies    int64 `json:"total_companies"`
	ActiveVacancies   int64 `json:"active_vacancies"`
	ActiveInternships int64 `json:"active_internships"`
}

// AnalyticsRepository работает поверх database/sql: вся агрегация
// живёт в хранимых функциях Postgres, а не в Go-коде.
type AnalyticsRepository interface {
	VacancyCreationStats(ctx context.Context, granularity string, from, to time.Time) ([]TimeSeriesPoint, error)
	StudentRegistrationStats(ctx context.Context, granularity string, from, to time.Time) ([]TimeSeriesPoint, error)
	VacancyTouchStatsByCompany(ctx context.Context, limit int) ([]CompanyTouchStat, error)
	ResumeSkillStats(ctx context.Context, limit int) ([]SkillStat, error)
	Overview(ctx context.Context) (*OverviewStats, error)
}

type AnalyticsRepositoryImpl struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) AnalyticsRepository {
	return &AnalyticsRepositoryImpl{db: db}
}

func (r *AnalyticsRepositoryImpl) queryTimeSeries(ctx context.Context, fn string, granularity string, from, to time.Time) ([]TimeSeriesPoint, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT period, count FROM "+fn+"($1, $2, $3)",
		granularity, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []TimeSeriesPoint{}
	for rows.Next() {
		var p TimeSeriesPoint
		if err := rows.Scan(&p.Period, &p.Count); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (r *AnalyticsRepositoryImpl) VacancyCreationStats(ctx context.Context, granularity string, from, to time.Time) ([]TimeSeriesPoint, error) {
	return r.queryTimeSeries(ctx, "get_vacancy_creation_stats", granularity, from, to)
}

func (r *AnalyticsRepositoryImpl) StudentRegistrationStats(ctx context.Context, granularity string, from, to time.Time) ([]TimeSeriesPoint, error) {
	return r.queryTimeSeries(ctx, "get_student_registration_stats", granularity, from, to)
}

func (r *AnalyticsRepositoryImpl) VacancyTouchStatsByCompany(ctx context.Context, limit int) ([]CompanyTouchStat, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT company_id, company_name, touch_count FROM get_vacancy_touch_stats_by_company($1)",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []CompanyTouchStat{}
	for rows.Next() {
		var s CompanyTouchStat
		if err := rows.Scan(&s.CompanyID, &s.CompanyName, &s.TouchCount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *AnalyticsRepositoryImpl) ResumeSkillStats(ctx context.Context, limit int) ([]SkillStat, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT skill, count FROM get_resume_skill_stats($1)",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []SkillStat{}
	for rows.Next() {
		var s SkillStat
		if err := rows.Scan(&s.Skill, &s.Count); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *AnalyticsRepositoryImpl) Overview(ctx context.Context) (*OverviewStats, error) {
	var stats OverviewStats
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users WHERE user_type = 'student'),
			(SELECT COUNT(*) FROM users WHERE user_type = 'company'),
			(SELECT COUNT(*) FROM vacancies WHERE status = 'active'),
			(SELECT COUNT(*) FROM vacancies WHERE status = 'active' AND is_internship)
	`).Scan(
		&stats.TotalStudents,
		&stats.TotalCompanies,
		&stats.ActiveVacancies,
		&stats.ActiveInternships,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
