// metrics - Prometheus-коллекторы шлюза. Регистрируются в default registry,
// наружу отдаются через promhttp.Handler() на /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "friends_gateway"

var (
	// BackendRequests - исходящие запросы к бэкенду по пути и классу исхода.
	BackendRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "backend",
		Name:      "requests_total",
		Help:      "Outgoing backend requests by endpoint and outcome class.",
	}, []string{"method", "endpoint", "class"})

	BackendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "backend",
		Name:      "request_duration_seconds",
		Help:      "Backend request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "endpoint"})

	// UnrecognizedPayloads - ответы списка друзей неизвестной формы.
	UnrecognizedPayloads = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "normalize",
		Name:      "unrecognized_payloads_total",
		Help:      "Friends list payloads that matched no known shape.",
	})

	// SessionsCleared - сбросы учётных данных после 401 на защищённом эндпоинте.
	SessionsCleared = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "sessions_cleared_total",
		Help:      "Credential stores cleared after an upstream 401.",
	})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Search cache lookups by result.",
	}, []string{"result"})
)

// StatusClass сворачивает HTTP-статус в метку: 2xx/3xx/4xx/5xx или "error" для транспортных сбоев.
func StatusClass(status int) string {
	switch {
	case status <= 0:
		return "error"
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
