package interceptors

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/friends-gateway/internal/pkg/log"
	"github.com/pribylovaa/friends-gateway/internal/pkg/redact"
)

// Logging - логирование исходящих запросов.
// Поведение:
//   - берёт X-Request-Id из запроса (или генерирует UUID и добавляет);
//   - пишет одну финальную запись уровня Info: msg="http_client", status, dur.
//
// Безопасность: тело не логируется, Authorization - только в виде схемы.
func Logging(base *slog.Logger) Interceptor {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()

			rid := r.Header.Get("X-Request-Id")
			if rid == "" {
				rid = uuid.NewString()
				r = r.Clone(r.Context())
				r.Header.Set("X-Request-Id", rid)
			}

			l := base.With(
				slog.String("request_id", rid),
				slog.String("method", r.Method),
				slog.String("endpoint", r.URL.Path),
				slog.String("target", r.URL.Host),
			)
			r = r.WithContext(log.Into(r.Context(), l))

			resp, err := next.RoundTrip(r)

			attrs := []any{
				slog.Duration("dur", time.Since(start)),
				slog.String("auth", redact.Authorization(r.Header.Get("Authorization"))),
			}
			if err != nil {
				l.Warn("http_client", append(attrs, slog.String("err", err.Error()))...)
				return nil, err
			}

			l.Info("http_client", append(attrs, slog.Int("status", resp.StatusCode))...)
			return resp, nil
		})
	}
}
