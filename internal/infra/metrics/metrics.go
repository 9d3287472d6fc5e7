package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gym_booking"

// Metrics owns a private registry so tests and short-lived commands never collide on the default one.
type Metrics struct {
	registry *prometheus.Registry

	bookingsCreated  *prometheus.CounterVec
	bookingsDeleted  *prometheus.CounterVec
	bookingsRejected *prometheus.CounterVec
	dispatchFailures *prometheus.CounterVec
	txRetries        prometheus.Counter
	wsClients        prometheus.Gauge
	httpDuration     *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		bookingsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_created_total",
				Help:      "Count of bookings created, by actor.",
			},
			[]string{"actor"},
		),
		bookingsDeleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_deleted_total",
				Help:      "Count of bookings deleted, by actor and refund outcome.",
			},
			[]string{"actor", "refunded"},
		),
		bookingsRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_rejected_total",
				Help:      "Count of booking attempts rejected, by error kind.",
			},
			[]string{"kind"},
		),
		dispatchFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notification_failures_total",
				Help:      "Count of notification deliveries that failed, by target.",
			},
			[]string{"target"},
		),
		txRetries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tx_retries_total",
				Help:      "Count of transaction retries after serialization or deadlock failures.",
			},
		),
		wsClients: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "websocket_clients",
				Help:      "Number of connected live feed clients.",
			},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by method, route and status.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}

	m.registry.MustRegister(
		m.bookingsCreated,
		m.bookingsDeleted,
		m.bookingsRejected,
		m.dispatchFailures,
		m.txRetries,
		m.wsClients,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) BookingCreated(actor string) {
	m.bookingsCreated.WithLabelValues(actor).Inc()
}

func (m *Metrics) BookingDeleted(actor string, refunded bool) {
	m.bookingsDeleted.WithLabelValues(actor, strconv.FormatBool(refunded)).Inc()
}

func (m *Metrics) BookingRejected(kind string) {
	m.bookingsRejected.WithLabelValues(kind).Inc()
}

func (m *Metrics) NotificationFailed(target string) {
	m.dispatchFailures.WithLabelValues(target).Inc()
}

func (m *Metrics) TxRetried() {
	m.txRetries.Inc()
}

func (m *Metrics) SetLiveClients(n int) {
	m.wsClients.Set(float64(n))
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
