package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Counter metrics
var (
	// EmpleadoOperationCounter counts employee operations by name
	EmpleadoOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "empleados_operations_total",
			Help: "Total number of employee operations",
		},
		[]string{"operation"}, // list, get, create, update, delete
	)

	// ErrorCounter counts rendered error envelopes by rc
	ErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "empleados_errors_total",
			Help: "Total number of error responses by rc",
		},
		[]string{"rc"},
	)

	// AuthFailureCounter counts rejected API keys
	AuthFailureCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "empleados_auth_failures_total",
			Help: "Total number of rejected credentials",
		},
		[]string{"reason"}, // missing, malformed, unknown, admin_token
	)
)

// Histogram metrics
var (
	// DBOperationDuration records repository call durations
	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "empleados_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // query, insert, update, delete
	)
)

// Gauge metrics
var (
	InfoGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "empleados_info",
			Help: "Information about the employee service",
		},
		[]string{"version"},
	)
)

func init() {
	prometheus.MustRegister(EmpleadoOperationCounter)
	prometheus.MustRegister(ErrorCounter)
	prometheus.MustRegister(AuthFailureCounter)
	prometheus.MustRegister(DBOperationDuration)
	prometheus.MustRegister(InfoGauge)

	InfoGauge.With(prometheus.Labels{"version": "1.0.0"}).Set(1)
}

// TrackDBOperation measures a database operation; use as
// defer TrackDBOperation("query")(time.Now())
func TrackDBOperation(operation string) func(time.Time) {
	return func(start time.Time) {
		DBOperationDuration.With(prometheus.Labels{
			"operation": operation,
		}).Observe(time.Since(start).Seconds())
	}
}

// RecordEmpleadoOperation records an employee operation
func RecordEmpleadoOperation(operation string) {
	EmpleadoOperationCounter.With(prometheus.Labels{"operation": operation}).Inc()
}

// RecordError records an error envelope
func RecordError(rc int) {
	ErrorCounter.With(prometheus.Labels{"rc": strconv.Itoa(rc)}).Inc()
}

// RecordAuthFailure records a rejected credential
func RecordAuthFailure(reason string) {
	AuthFailureCounter.With(prometheus.Labels{"reason": reason}).Inc()
}
