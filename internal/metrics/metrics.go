package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Solana RPC
	solanaRPCCallsTotal   *prometheus.CounterVec
	solanaRPCCallDuration *prometheus.HistogramVec

	// Donations
	donationsBuiltTotal     *prometheus.CounterVec
	donationLamportsTotal   *prometheus.CounterVec
	donationValidationFails *prometheus.CounterVec

	// HTTP
	httpRequestDuration *prometheus.HistogramVec
	httpRequestsTotal   *prometheus.CounterVec

	// NATS
	natsMessagesPublished *prometheus.CounterVec
	natsPublishDuration   *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance and registers all collectors.
// If registry is nil, prometheus.DefaultRegisterer is used.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		solanaRPCCallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solana_rpc_calls_total",
				Help: "Total number of Solana RPC calls by method and status",
			},
			[]string{"method", "status", "endpoint"},
		),
		solanaRPCCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "solana_rpc_call_duration_seconds",
				Help:    "Duration of Solana RPC calls in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"method", "endpoint"},
		),

		donationsBuiltTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donation_transactions_built_total",
				Help: "Total number of unsigned donation transactions returned to wallets",
			},
			[]string{"cluster"},
		),
		donationLamportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donation_lamports_requested_total",
				Help: "Sum of lamports in returned donation transactions (not confirmed on chain)",
			},
			[]string{"cluster"},
		),
		donationValidationFails: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donation_validation_failures_total",
				Help: "Total number of donation requests rejected with 400",
			},
			[]string{"reason"},
		),

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
			[]string{"handler", "method", "status"},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"handler", "method", "status"},
		),

		natsMessagesPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nats_messages_published_total",
				Help: "Total number of NATS messages published",
			},
			[]string{"subject", "status"},
		),
		natsPublishDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nats_publish_duration_seconds",
				Help:    "Duration of NATS publish operations in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"subject"},
		),
	}
}

// RecordRPCCall records a Solana RPC call with duration.
func (m *Metrics) RecordRPCCall(method, status, endpoint string, duration float64) {
	if m == nil {
		return
	}
	m.solanaRPCCallsTotal.WithLabelValues(method, status, endpoint).Inc()
	m.solanaRPCCallDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// RecordDonationBuilt records a transaction handed back to a wallet.
func (m *Metrics) RecordDonationBuilt(cluster string, lamports uint64) {
	if m == nil {
		return
	}
	m.donationsBuiltTotal.WithLabelValues(cluster).Inc()
	m.donationLamportsTotal.WithLabelValues(cluster).Add(float64(lamports))
}

// RecordValidationFailure records a rejected donation request.
func (m *Metrics) RecordValidationFailure(reason string) {
	if m == nil {
		return
	}
	m.donationValidationFails.WithLabelValues(reason).Inc()
}

// ValidationFailures returns the rejection counter for reason.
func (m *Metrics) ValidationFailures(reason string) prometheus.Counter {
	return m.donationValidationFails.WithLabelValues(reason)
}

// RecordHTTPRequest records an HTTP request with duration.
func (m *Metrics) RecordHTTPRequest(handler, method string, statusCode int, duration float64) {
	if m == nil {
		return
	}
	status := statusCodeToString(statusCode)
	m.httpRequestDuration.WithLabelValues(handler, method, status).Observe(duration)
	m.httpRequestsTotal.WithLabelValues(handler, method, status).Inc()
}

// RecordNATSPublish records a NATS publish operation.
func (m *Metrics) RecordNATSPublish(subject, status string, duration float64) {
	if m == nil {
		return
	}
	m.natsMessagesPublished.WithLabelValues(subject, status).Inc()
	m.natsPublishDuration.WithLabelValues(subject).Observe(duration)
}

func statusCodeToString(code int) string {
	// Group status codes by class
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500 && code < 600:
		return "5xx"
	default:
		return "unknown"
	}
}
