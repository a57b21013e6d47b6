package interceptors

import (
	"net/http"
	"time"

	"github.com/pribylovaa/friends-gateway/internal/metrics"
)

// Metrics считает исходящие запросы и их длительность по пути бэкенда.
func Metrics() Interceptor {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(r)

			status := 0
			if err == nil {
				status = resp.StatusCode
			}

			metrics.BackendRequests.WithLabelValues(r.Method, r.URL.Path, metrics.StatusClass(status)).Inc()
			metrics.BackendDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())

			return resp, err
		})
	}
}
