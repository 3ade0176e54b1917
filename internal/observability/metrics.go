package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "career_pulse"

// Metrics holds the service's Prometheus collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry           *prometheus.Registry
	insightRequests    *prometheus.CounterVec
	completionDuration *prometheus.HistogramVec
	httpRequests       *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		insightRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "insight_requests_total",
			Help:      "Insight requests by topic, result source and fallback reason.",
		}, []string{"topic", "source", "reason"}),
		completionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "completion_duration_seconds",
			Help:      "Latency of completion service calls.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 10, 15},
		}, []string{"topic"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		}, []string{"route", "status"}),
	}
	m.registry.MustRegister(m.insightRequests, m.completionDuration, m.httpRequests)
	return m
}

// RecordInsight counts one resolved insight request
func (m *Metrics) RecordInsight(topic, source, reason string) {
	if m == nil {
		return
	}
	m.insightRequests.WithLabelValues(topic, source, reason).Inc()
}

// RecordCompletion observes the latency of one completion call
func (m *Metrics) RecordCompletion(topic string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.completionDuration.WithLabelValues(topic).Observe(elapsed.Seconds())
}

// RecordHTTP counts one served HTTP request
func (m *Metrics) RecordHTTP(route string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// Registry exposes the private registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
