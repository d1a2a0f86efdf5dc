package metrics

import (
	"net/http"
	"strconv"
	"time"

	"mynbala-backend/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so that several instances can coexist in tests.
// All methods are no-ops on a nil receiver.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	submissions    *prometheus.CounterVec
	promoApplies   *prometheus.CounterVec
	draftOps       *prometheus.CounterVec
	cabinBookings  *prometheus.CounterVec
	mountedFunnels prometheus.Gauge
}

func New(cfg config.MetricsConfig) *Metrics {
	ns := cfg.Namespace
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "funnel",
			Name:      "submissions_total",
			Help:      "Funnel submissions by outcome.",
		}, []string{"outcome"}),
		promoApplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "funnel",
			Name:      "promo_applications_total",
			Help:      "Promo code applications by mode and result.",
		}, []string{"mode", "result"}),
		draftOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "draft",
			Name:      "operations_total",
			Help:      "Draft store operations by op and result.",
		}, []string{"op", "result"}),
		cabinBookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "cabin",
			Name:      "bookings_total",
			Help:      "Cabin booking attempts by result.",
		}, []string{"result"}),
		mountedFunnels: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: "funnel",
			Name:      "mounted",
			Help:      "Funnel controllers currently held by the session registry.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.submissions,
		m.promoApplies,
		m.draftOps,
		m.cabinBookings,
		m.mountedFunnels,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Metrics) Submission(outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) PromoApplied(mode, result string) {
	if m == nil {
		return
	}
	m.promoApplies.WithLabelValues(mode, result).Inc()
}

func (m *Metrics) DraftOp(op, result string) {
	if m == nil {
		return
	}
	m.draftOps.WithLabelValues(op, result).Inc()
}

func (m *Metrics) CabinBooking(result string) {
	if m == nil {
		return
	}
	m.cabinBookings.WithLabelValues(result).Inc()
}

func (m *Metrics) SetMountedFunnels(n int) {
	if m == nil {
		return
	}
	m.mountedFunnels.Set(float64(n))
}
