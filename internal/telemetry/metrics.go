// Package telemetry exposes the service's own Prometheus metrics.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hostpulse"

// Metrics holds the collectors on a private registry, so tests and multiple
// servers in one process never collide on the default registry.
type Metrics struct {
	registry *prometheus.Registry

	requests     *prometheus.CounterVec
	active       prometheus.Gauge
	duration     prometheus.Histogram
	readFailures *prometheus.CounterVec
}

// New registers the hostpulse collectors plus the Go runtime and process
// collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "HTTP requests served, by path and status code.",
		}, []string{"path", "code"}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_requests",
			Help:      "HTTP requests currently being served.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "snapshot_duration_seconds",
			Help:      "Time spent assembling one snapshot.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}),
		readFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_read_failures_total",
			Help:      "Provider reads that fell back to their default, by source.",
		}, []string{"source"}),
	}
	m.registry.MustRegister(
		m.requests,
		m.active,
		m.duration,
		m.readFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry backing m.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ReadFailed counts a provider read that degraded to its default.
func (m *Metrics) ReadFailed(source string, _ error) {
	m.readFailures.WithLabelValues(source).Inc()
}

// ObserveSnapshot records how long one snapshot took to assemble.
func (m *Metrics) ObserveSnapshot(d time.Duration) {
	m.duration.Observe(d.Seconds())
}

// RequestStarted marks a request in flight and returns the func that ends it.
func (m *Metrics) RequestStarted() func(path string, code int) {
	m.active.Inc()
	return func(path string, code int) {
		m.active.Dec()
		m.requests.WithLabelValues(path, statusLabel(code)).Inc()
	}
}

func statusLabel(code int) string {
	if code <= 0 {
		code = http.StatusOK
	}
	return strconv.Itoa(code)
}
