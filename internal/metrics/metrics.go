// Package metrics собирает и публикует Prometheus-метрики HTTP-слоя.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector собирает метрики обработки запросов.
type Collector struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewCollector создает Collector и регистрирует метрики в переданном registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "careercenter_http_requests_total",
			Help: "Количество HTTP запросов по методу, маршруту и статусу",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "careercenter_http_request_duration_seconds",
			Help:    "Длительность обработки HTTP запроса (секунды)",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(c.requests, c.duration)
	return c
}

// RecordRequest фиксирует завершенный запрос.
func (c *Collector) RecordRequest(method, route string, status int, elapsed time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler возвращает HTTP-хендлер для Prometheus scrape.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
