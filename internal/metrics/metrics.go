package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the orchestrator. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	ChannelOperationsTotal          *prometheus.CounterVec
	ChannelOperationDurationSeconds *prometheus.HistogramVec
	PerformanceRecordsInsertedTotal prometheus.Counter
	GenerationFallbacksTotal        *prometheus.CounterVec
	APIRequestsTotal                *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates a new Metrics instance with all metrics registered on a
// private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		ChannelOperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automark_channel_operations_total",
				Help: "Total number of channel operations by outcome",
			},
			[]string{"channel", "operation", "status"},
		),
		ChannelOperationDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "automark_channel_operation_duration_seconds",
				Help:    "Duration of platform calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"channel", "operation"},
		),
		PerformanceRecordsInsertedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "automark_performance_records_inserted_total",
				Help: "Total number of performance records written by syncs",
			},
		),
		GenerationFallbacksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automark_generation_fallbacks_total",
				Help: "Total number of generations answered with canned output",
			},
			[]string{"kind"},
		),
		APIRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automark_api_requests_total",
				Help: "Total number of API requests by route and status code",
			},
			[]string{"method", "route", "code"},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.ChannelOperationsTotal,
		m.ChannelOperationDurationSeconds,
		m.PerformanceRecordsInsertedTotal,
		m.GenerationFallbacksTotal,
		m.APIRequestsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// ObserveChannelOperation records one platform call.
func (m *Metrics) ObserveChannelOperation(channel, operation, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.ChannelOperationsTotal.WithLabelValues(channel, operation, status).Inc()
	m.ChannelOperationDurationSeconds.WithLabelValues(channel, operation).Observe(d.Seconds())
}

// AddPerformanceRecords counts records written by a sync.
func (m *Metrics) AddPerformanceRecords(n int) {
	if m == nil {
		return
	}
	m.PerformanceRecordsInsertedTotal.Add(float64(n))
}

// IncGenerationFallback counts a canned generator answer.
func (m *Metrics) IncGenerationFallback(kind string) {
	if m == nil {
		return
	}
	m.GenerationFallbacksTotal.WithLabelValues(kind).Inc()
}

// IncAPIRequest counts a served API request.
func (m *Metrics) IncAPIRequest(method, route, code string) {
	if m == nil {
		return
	}
	m.APIRequestsTotal.WithLabelValues(method, route, code).Inc()
}
