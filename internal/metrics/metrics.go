// Package metrics holds the Prometheus collectors of the sync engine and the
// intake server.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "field_sync"

var (
	once sync.Once

	pushTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_total",
			Help:      "Form push attempts by form type and outcome.",
		},
		[]string{"form_type", "outcome"},
	)

	queueDepth = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_depth",
			Help:      "Pending sync queue entries by entity type.",
		},
		[]string{"entity_type"},
	)

	listRefreshTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "list_refresh_total",
			Help:      "Cached list refreshes by list and result.",
		},
		[]string{"list", "result"},
	)

	submissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Forms received by the intake server by form type and status code.",
		},
		[]string{"form_type", "code"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and method.",
		},
		[]string{"route", "method"},
	)
)

// Register registers the collectors with the default registry. Safe to call
// multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(pushTotal, queueDepth, listRefreshTotal, submissionsTotal, httpRequests)
	})
}

func IncPush(formType, outcome string) {
	pushTotal.WithLabelValues(formType, outcome).Inc()
}

func SetQueueDepth(entityType string, depth int) {
	queueDepth.WithLabelValues(entityType).Set(float64(depth))
}

// IncListRefresh counts a list refresh; result is "success" or "error".
func IncListRefresh(list, result string) {
	listRefreshTotal.WithLabelValues(list, result).Inc()
}

func IncSubmission(formType string, code int) {
	submissionsTotal.WithLabelValues(formType, statusLabel(code)).Inc()
}

func IncHTTP(route, method string) {
	httpRequests.WithLabelValues(route, method).Inc()
}

func statusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
