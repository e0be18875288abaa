package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the application.
// Following the explicit dependency injection pattern, this struct
// is passed to all components that need to record metrics.
type Metrics struct {
	// Stream metrics
	streamEventsTotal       *prometheus.CounterVec
	streamReconnectsTotal   *prometheus.CounterVec
	streamDecodeErrorsTotal prometheus.Counter

	// Solana RPC metrics
	solanaRPCCallsTotal   *prometheus.CounterVec
	solanaRPCCallDuration *prometheus.HistogramVec

	// Dispatch and confirmation metrics
	submissionsTotal       *prometheus.CounterVec
	submissionsInFlight    prometheus.Gauge
	batchSize              prometheus.Histogram
	confirmationLatency    *prometheus.HistogramVec
	confirmationPollsTotal prometheus.Counter

	// HTTP metrics
	httpRequestDuration *prometheus.HistogramVec
	httpRequestsTotal   *prometheus.CounterVec

	// NATS metrics
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
		// Stream metrics
		streamEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stream_events_total",
				Help: "Total number of geyser stream events received by kind",
			},
			[]string{"kind"},
		),
		streamReconnectsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stream_reconnects_total",
				Help: "Total number of stream reconnect attempts by reason",
			},
			[]string{"reason"},
		),
		streamDecodeErrorsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "stream_decode_errors_total",
				Help: "Total number of malformed stream updates skipped",
			},
		),

		// Solana RPC metrics
		solanaRPCCallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "solana_rpc_calls_total",
				Help: "Total number of Solana RPC calls by method and status",
			},
			[]string{"method", "status"},
		),
		solanaRPCCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "solana_rpc_call_duration_seconds",
				Help:    "Duration of Solana RPC calls in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"method"},
		),

		// Dispatch and confirmation metrics
		submissionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfer_submissions_total",
				Help: "Total number of transfer submissions by terminal result",
			},
			[]string{"result"},
		),
		submissionsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "transfer_submissions_in_flight",
				Help: "Number of submissions sent to the network but not yet terminal",
			},
		),
		batchSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_batch_size",
				Help:    "Number of instructions per triggered batch",
				Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
			},
		),
		confirmationLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transfer_confirmation_latency_seconds",
				Help:    "Time from submission to terminal status in seconds",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"result"},
		),
		confirmationPollsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "transfer_confirmation_polls_total",
				Help: "Total number of signature status polls issued",
			},
		),

		// HTTP metrics
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

		// NATS metrics
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

// Stream metric helpers

// RecordStreamEvent records one received update of the given kind.
func (m *Metrics) RecordStreamEvent(kind string) {
	m.streamEventsTotal.WithLabelValues(kind).Inc()
}

// RecordStreamReconnect records a reconnect attempt.
func (m *Metrics) RecordStreamReconnect(reason string) {
	m.streamReconnectsTotal.WithLabelValues(reason).Inc()
}

// RecordStreamDecodeError records a malformed update that was skipped.
func (m *Metrics) RecordStreamDecodeError() {
	m.streamDecodeErrorsTotal.Inc()
}

// Solana RPC metric helpers

// RecordRPCCall records a Solana RPC call with duration.
func (m *Metrics) RecordRPCCall(method, status string, duration float64) {
	m.solanaRPCCallsTotal.WithLabelValues(method, status).Inc()
	m.solanaRPCCallDuration.WithLabelValues(method).Observe(duration)
}

// Dispatch and confirmation metric helpers

// RecordSubmissionResult records a submission reaching a terminal status.
func (m *Metrics) RecordSubmissionResult(result string) {
	m.submissionsTotal.WithLabelValues(result).Inc()
}

// IncInFlight records a submission entering the in-flight window.
func (m *Metrics) IncInFlight() {
	m.submissionsInFlight.Inc()
}

// DecInFlight records a submission leaving the in-flight window.
func (m *Metrics) DecInFlight() {
	m.submissionsInFlight.Dec()
}

// RecordBatchSize records the instruction count of a triggered batch.
func (m *Metrics) RecordBatchSize(n int) {
	m.batchSize.Observe(float64(n))
}

// RecordConfirmationLatency records submission-to-terminal latency.
func (m *Metrics) RecordConfirmationLatency(result string, seconds float64) {
	m.confirmationLatency.WithLabelValues(result).Observe(seconds)
}

// RecordConfirmationPoll records one signature status poll.
func (m *Metrics) RecordConfirmationPoll() {
	m.confirmationPollsTotal.Inc()
}

// HTTP metric helpers

// RecordHTTPRequest records an HTTP request with duration.
func (m *Metrics) RecordHTTPRequest(handler, method string, statusCode int, duration float64) {
	status := statusCodeToString(statusCode)
	m.httpRequestDuration.WithLabelValues(handler, method, status).Observe(duration)
	m.httpRequestsTotal.WithLabelValues(handler, method, status).Inc()
}

// NATS metric helpers

// RecordNATSPublish records a NATS publish operation.
func (m *Metrics) RecordNATSPublish(subject, status string, duration float64) {
	m.natsMessagesPublished.WithLabelValues(subject, status).Inc()
	m.natsPublishDuration.WithLabelValues(subject).Observe(duration)
}

// statusCodeToString converts an HTTP status code to its string form for labels.
func statusCodeToString(code int) string {
	return fmt.Sprintf("%d", code)
}
