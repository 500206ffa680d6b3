package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"careercenter_backend/internal/services/dto"
	"careercenter_backend/pkg/apperrors"
)

func TestTimeSeriesRange_Defaults(t *testing.T) {
	granularity, from, to := timeSeriesRange(&dto.TimeSeriesRequest{})

	assert.Equal(t, "day", granularity)
	assert.WithinDuration(t, time.Now(), to, time.Minute)
	assert.WithinDuration(t, to.AddDate(0, 0, -30), from, time.Minute)
}

func TestTimeSeriesRange_ExplicitValues(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	granularity, from, to := timeSeriesRange(&dto.TimeSeriesRequest{
		Granularity: "month",
		StartDate:   &start,
		EndDate:     &end,
	})

	assert.Equal(t, "month", granularity)
	assert.Equal(t, start, from)
	assert.Equal(t, end, to)
}

func TestTimeSeriesRange_StartOnly(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	_, from, to := timeSeriesRange(&dto.TimeSeriesRequest{StartDate: &start})

	assert.Equal(t, start, from)
	assert.WithinDuration(t, time.Now(), to, time.Minute)
}

func TestAnalyticsService_DatabaseNotConfigured(t *testing.T) {
	svc := NewAnalyticsService(nil, nil)

	_, err := svc.Overview(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrDatabaseNotConfigured)

	_, err = svc.VacancyStatsByTime(context.Background(), &dto.TimeSeriesRequest{})
	assert.ErrorIs(t, err, apperrors.ErrDatabaseNotConfigured)

	_, err = svc.CompanyActivity(context.Background(), 10)
	assert.ErrorIs(t, err, apperrors.ErrDatabaseNotConfigured)

	_, err = svc.WordCloud(context.Background(), 50)
	assert.ErrorIs(t, err, apperrors.ErrDatabaseNotConfigured)
}
