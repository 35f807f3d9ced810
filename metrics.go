package farmkonnect

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	errorKindTransport = "transport"
	errorKindHTTP      = "http"
)

// MetricsCollector provides Prometheus metrics for the request lifecycle.
// It is safe for concurrent use and may be shared by several clients.
// All methods tolerate a nil receiver, which records nothing.
type MetricsCollector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec
	retriesTotal     *prometheus.CounterVec
	errorsTotal      *prometheus.CounterVec
}

// NewMetricsCollector creates a metrics collector on the default
// registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a collector using the supplied
// registerer.
func NewMetricsCollectorWithRegistry(registry prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "farmkonnect_requests_total",
				Help: "Total number of request attempts made",
			},
			[]string{"method", "status_code", "endpoint"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "farmkonnect_request_duration_seconds",
				Help:    "Duration of request attempts in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		requestsInFlight: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "farmkonnect_requests_in_flight",
				Help: "Number of request attempts currently in flight",
			},
			[]string{"method", "endpoint"},
		),
		retriesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "farmkonnect_retries_total",
				Help: "Total number of retried attempts",
			},
			[]string{"method", "endpoint"},
		),
		errorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "farmkonnect_errors_total",
				Help: "Total number of requests that ended in an error",
			},
			[]string{"method", "endpoint", "type"},
		),
	}
}

func (m *MetricsCollector) recordRequest(method, endpoint string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, strconv.Itoa(status), endpoint).Inc()
	m.requestDuration.WithLabelValues(method, endpoint).Observe(d.Seconds())
}

func (m *MetricsCollector) recordRetry(method, endpoint string) {
	if m == nil {
		return
	}
	m.retriesTotal.WithLabelValues(method, endpoint).Inc()
}

func (m *MetricsCollector) recordError(method, endpoint, kind string) {
	if m == nil {
		return
	}
	m.errorsTotal.WithLabelValues(method, endpoint, kind).Inc()
}

func (m *MetricsCollector) incInFlight(method, endpoint string) {
	if m == nil {
		return
	}
	m.requestsInFlight.WithLabelValues(method, endpoint).Inc()
}

func (m *MetricsCollector) decInFlight(method, endpoint string) {
	if m == nil {
		return
	}
	m.requestsInFlight.WithLabelValues(method, endpoint).Dec()
}
