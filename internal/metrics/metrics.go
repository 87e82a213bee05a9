package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	bookings        *prometheus.CounterVec
	conflicts       prometheus.Counter
	calculations    prometheus.Counter
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Appointments booked, by package",
		}, []string{"package"}),
		conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "booking_conflicts_total",
			Help: "Bookings rejected because the slot was taken",
		}),
		calculations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "slot_calculations_total",
			Help: "Availability calculations served",
		}),
	}

	registry.MustRegister(
		m.requestDuration,
		m.requestTotal,
		m.bookings,
		m.conflicts,
		m.calculations,
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return m
}

func (m *Metrics) Handler() http.Handler {
	return m.handler
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, path string, status int, d time.Duration) {
	code := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, code).Observe(d.Seconds())
	m.requestTotal.WithLabelValues(method, path, code).Inc()
}

func (m *Metrics) SlotsCalculated() {
	m.calculations.Inc()
}

func (m *Metrics) BookingCreated(pkg string) {
	m.bookings.WithLabelValues(pkg).Inc()
}

func (m *Metrics) BookingConflict() {
	m.conflicts.Inc()
}
