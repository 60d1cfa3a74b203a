package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор прометеевских метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New регистрирует метрики в дефолтном регистре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),
	}
}

// ObserveHTTPRequest фиксирует завершённый HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RegisterDBPool регистрирует гейджи состояния пула соединений БД
func RegisterDBPool(db *sql.DB, serviceName string) {
	constLabels := prometheus.Labels{"service": serviceName}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name:        "db_pool_open_connections",
		Help:        "Number of open connections in the database pool",
		ConstLabels: constLabels,
	}, func() float64 { return float64(db.Stats().OpenConnections) })

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name:        "db_pool_in_use_connections",
		Help:        "Number of connections currently in use",
		ConstLabels: constLabels,
	}, func() float64 { return float64(db.Stats().InUse) })

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name:        "db_pool_idle_connections",
		Help:        "Number of idle connections in the database pool",
		ConstLabels: constLabels,
	}, func() float64 { return float64(db.Stats().Idle) })
}
