// Package metrics exposes Prometheus collectors for the HTTP API, code
// issuance, push delivery and store events. Collectors register on the default
// registry at init; mount promhttp.Handler() to scrape them.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "engage"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// CodesIssuedTotal result is one of: sent, rejected, store_failed, send_failed.
	CodesIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "codes_issued_total",
			Help:      "Verification code issuance attempts by outcome",
		},
		[]string{"result"},
	)

	PushSendsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_sends_total",
			Help:      "FCM send attempts by notification type and outcome",
		},
		[]string{"type", "result"},
	)

	EventsDispatchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dispatched_total",
			Help:      "Document creation events handed to a reaction",
		},
		[]string{"collection"},
	)
)

func RecordHTTPRequest(method, route string, status int, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func RecordCodeIssued(result string) {
	CodesIssuedTotal.WithLabelValues(result).Inc()
}

func RecordPushSend(notificationType string, err error) {
	if notificationType == "" {
		notificationType = "direct"
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	PushSendsTotal.WithLabelValues(notificationType, result).Inc()
}

func RecordEventDispatched(collection string) {
	EventsDispatchedTotal.WithLabelValues(collection).Inc()
}
