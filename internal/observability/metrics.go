// Package observability holds the Prometheus metrics exported by the server.
// All methods are safe to call on a nil *Metrics, which records nothing.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var breakerStates = []string{"closed", "half-open", "open"}

type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	windows         prometheus.Histogram
	freeSlots       prometheus.Histogram
	cacheLookups    *prometheus.CounterVec
	breakerState    *prometheus.GaugeVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "availability_requests_total",
				Help:      "Availability operations by outcome.",
			},
			[]string{"operation", "outcome"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "availability_request_duration_seconds",
				Help:      "Availability operation latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		windows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "availability_working_windows",
			Help:      "Working windows generated per computation.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		freeSlots: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "availability_free_slots",
			Help:      "Free slots returned per computation.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "busy_cache_lookups_total",
				Help:      "Busy period cache lookups by result.",
			},
			[]string{"result"},
		),
		breakerState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "calendar_breaker_state",
				Help:      "1 for the current state of each calendar source circuit breaker.",
			},
			[]string{"breaker", "state"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	registry.MustRegister(
		m.requests,
		m.requestDuration,
		m.windows,
		m.freeSlots,
		m.cacheLookups,
		m.breakerState,
		m.httpRequests,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveRequest(operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(operation, outcome).Inc()
	m.requestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *Metrics) ObserveResult(windows, slots int) {
	if m == nil {
		return
	}
	m.windows.Observe(float64(windows))
	m.freeSlots.Observe(float64(slots))
}

func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) BreakerState(name, state string) {
	if m == nil {
		return
	}
	for _, s := range breakerStates {
		v := 0.0
		if s == state {
			v = 1
		}
		m.breakerState.WithLabelValues(name, s).Set(v)
	}
}

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
