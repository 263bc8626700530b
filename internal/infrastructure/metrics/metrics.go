package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/pixdash/internal/domain"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Remote API metrics
	APIRequests *prometheus.CounterVec
	APIDuration *prometheus.HistogramVec

	// Transfer metrics
	TransfersSubmitted *prometheus.CounterVec

	// Cache metrics
	CacheRefreshes *prometheus.CounterVec

	// Notification metrics
	Notifications *prometheus.CounterVec

	// Credential store metrics
	CredentialOperations *prometheus.CounterVec

	// Local API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec
}

// New creates all metrics and registers them with reg.
// A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		// Remote API metrics
		APIRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pixdash_api_requests_total",
				Help: "Total requests sent to the banking API",
			},
			[]string{"endpoint", "status"},
		),
		APIDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pixdash_api_duration_seconds",
				Help:    "Banking API request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),

		// Transfer metrics
		TransfersSubmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pixdash_transfers_submitted_total",
				Help: "Total transfer submissions by recipient kind and result",
			},
			[]string{"recipient", "result"},
		),

		// Cache metrics
		CacheRefreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pixdash_cache_refreshes_total",
				Help: "Total entity cache refreshes by slice and result",
			},
			[]string{"slice", "result"},
		),

		// Notification metrics
		Notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pixdash_notifications_total",
				Help: "Total notifications raised by severity",
			},
			[]string{"severity"},
		),

		// Credential store metrics
		CredentialOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pixdash_credential_operations_total",
				Help: "Total credential store operations",
			},
			[]string{"backend", "operation", "result"},
		),

		// Local API metrics
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pixdash_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pixdash_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Rate limiting metrics
		RateLimitHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pixdash_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),
	}
}

// ObserveAPICall records one outbound request. status is the HTTP status
// code, or "network" when no response arrived.
func (m *Metrics) ObserveAPICall(endpoint, status string, elapsed time.Duration) {
	m.APIRequests.WithLabelValues(endpoint, status).Inc()
	m.APIDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// CacheRefreshed counts a cache slice refresh.
func (m *Metrics) CacheRefreshed(slice string, err error) {
	m.CacheRefreshes.WithLabelValues(slice, result(err)).Inc()
}

// TransferSubmitted counts a transfer submission.
func (m *Metrics) TransferSubmitted(kind domain.RecipientKind, err error) {
	m.TransfersSubmitted.WithLabelValues(string(kind), result(err)).Inc()
}

// Notified counts a raised notification.
func (m *Metrics) Notified(severity domain.Severity) {
	m.Notifications.WithLabelValues(string(severity)).Inc()
}

// CredentialOperation counts a credential store call.
func (m *Metrics) CredentialOperation(backend, operation string, err error) {
	m.CredentialOperations.WithLabelValues(backend, operation, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
