package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the request collectors shared by all resource handlers
type Metrics struct {
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
}

// NewMetrics creates the request collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_api_requests_total",
			Help: "Total number of requests to the inventory API",
		},
		[]string{"method", "resource", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_api_request_duration_seconds",
			Help:    "Duration of inventory API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "resource", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "inventory_api_request_duration_summary_seconds",
			Help:       "Latency quantiles of inventory API requests",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"resource"},
	)

	reg.MustRegister(requestCounter, requestLatency, requestSummary)

	return &Metrics{
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		requestSummary: requestSummary,
	}
}

// Instrument wraps next with request counting and latency observation
func (m *Metrics) Instrument(resource, endpoint string, next http.HandlerFunc) http.HandlerFunc {
	resource = strcase.ToSnake(resource)

	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		m.requestLatency.WithLabelValues(r.Method, resource, endpoint).Observe(duration)
		m.requestSummary.WithLabelValues(resource).Observe(duration)
		m.requestCounter.WithLabelValues(r.Method, resource, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// statusRecorder wraps http.ResponseWriter to capture status code
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
