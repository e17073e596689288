package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It includes HTTP request counters, a gauge for in-flight requests,
// histograms for request and database query durations, and a counter
// for employee operations by outcome.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	DBQueryDuration      *prometheus.HistogramVec
	EmployeeOperations   *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		HTTPRequestsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "staffapi_http_requests_total",
			Help: "Total number of HTTP requests handled by the API.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "staffapi_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		HTTPRequestsInFlight: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "staffapi_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed.",
		}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "staffapi_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'find_employee_by_id', 'insert_employee'
		EmployeeOperations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "staffapi_employee_operations_total",
			Help: "Total number of employee operations by outcome.",
		}, []string{"operation", "status"}),
	}

	for _, op := range []string{OpFindAll, OpFindByID, OpSave, OpDelete} {
		metrics.EmployeeOperations.WithLabelValues(op, StatusSuccess)
		metrics.EmployeeOperations.WithLabelValues(op, StatusFailure)
	}

	return metrics
}

// Employee operation label values.
const (
	OpFindAll  = "find_all"
	OpFindByID = "find_by_id"
	OpSave     = "save"
	OpDelete   = "delete"

	StatusSuccess = "success"
	StatusFailure = "failure"
)
