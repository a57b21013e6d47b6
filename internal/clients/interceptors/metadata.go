package interceptors

import (
	"net/http"

	"github.com/pribylovaa/friends-gateway/internal/auth"
)

// WithMetadata добавляет в исходящий запрос заголовки:
//   - X-Request-Id (если есть в контексте),
//   - Authorization из Store запроса (если запрос его ещё не несёт),
//   - User-Agent (если передан параметром).
func WithMetadata(userAgent string) Interceptor {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			ctx := r.Context()
			out := r.Clone(ctx)

			if rid, _ := ctx.Value(CtxRequestID).(string); rid != "" && out.Header.Get("X-Request-Id") == "" {
				out.Header.Set("X-Request-Id", rid)
			}
			if out.Header.Get("Authorization") == "" {
				if v := auth.FromContext(ctx).AuthHeader(); v != "" {
					out.Header.Set("Authorization", v)
				}
			}
			if userAgent != "" {
				out.Header.Set("User-Agent", userAgent)
			}

			return next.RoundTrip(out)
		})
	}
}
