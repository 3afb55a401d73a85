package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "artisthub",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "artisthub",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "artisthub",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	commissionTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "artisthub",
			Subsystem: "commission",
			Name:      "transitions_total",
			Help:      "Commission status changes by source and target status.",
		},
		[]string{"from", "to"},
	)

	notificationsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "artisthub",
			Subsystem: "notification",
			Name:      "dispatched_total",
			Help:      "Lifecycle notifications handed to the notifier, by kind and outcome.",
		},
		[]string{"kind", "success"},
	)

	paymentWebhooks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "artisthub",
			Subsystem: "payment",
			Name:      "webhooks_total",
			Help:      "Payment provider webhook events by type and outcome.",
		},
		[]string{"type", "outcome"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		commissionTransitions,
		notificationsSent,
		paymentWebhooks,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted/RequestFinished are split so the gin middleware can
// record the route template instead of the raw path.
func RequestStarted() {
	httpInFlight.Inc()
}

func RequestFinished(method, route string, status int, duration time.Duration) {
	httpInFlight.Dec()
	if route == "" {
		route = "unmatched"
	}
	method = strings.ToUpper(method)
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordTransition counts a commission status change.
func RecordTransition(from, to string) {
	if from == "" {
		from = "none"
	}
	commissionTransitions.WithLabelValues(from, to).Inc()
}

// RecordNotification counts a notifier dispatch.
func RecordNotification(kind string, success bool) {
	notificationsSent.WithLabelValues(kind, strconv.FormatBool(success)).Inc()
}

// RecordWebhook counts a payment webhook event. outcome is one of
// processed, duplicate, ignored, rejected, failed.
func RecordWebhook(eventType, outcome string) {
	if eventType == "" {
		eventType = "unknown"
	}
	paymentWebhooks.WithLabelValues(eventType, outcome).Inc()
}
