package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор прометеус-метрик сервиса
type Metrics struct {
	serviceName string

	// HTTP метрики
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Метрики операций движка бронирования
	EngineOperationsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики в дефолтном регистре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		serviceName: serviceName,
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name:        "http_requests_in_flight",
				Help:        "Current number of in-flight HTTP requests",
				ConstLabels: constLabels,
			},
		),
		EngineOperationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "engine_operations_total",
				Help:        "Total number of reservation engine operations by result",
				ConstLabels: constLabels,
			},
			[]string{"operation", "result"},
		),
	}
}

// IncEngineOperation инкрементирует счетчик операций движка.
// Используется движком через узкий интерфейс, чтобы не тянуть prometheus в бизнес-логику.
func (m *Metrics) IncEngineOperation(operation, result string) {
	m.EngineOperationsTotal.WithLabelValues(operation, result).Inc()
}
