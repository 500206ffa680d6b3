package dto

import "time"

// TimeSeriesRequest - параметры временных рядов аналитики.
// Пустой диапазон означает последние 30 дней.
type TimeSeriesRequest struct {
	Granularity string     `form:"granularity" validate:"omitempty,is-granularity"`
	StartDate   *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate     *time.Time `form:"end_date" time_format:"2006-01-02"`
}

// CompanyActivityRequest - топ компаний по откликам
type CompanyActivityRequest struct {
	Limit int `form:"limit" validate:"omitempty,min=1,max=100"`
}

// WordCloudRequest - топ навыков из резюме
type WordCloudRequest struct {
	Limit int `form:"limit" validate:"omitempty,min=1,max=200"`
}
