package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/pribylovaa/friends-gateway/internal/auth"
	apierrors "github.com/pribylovaa/friends-gateway/internal/errors"
	"github.com/pribylovaa/friends-gateway/internal/navigate"
	logctx "github.com/pribylovaa/friends-gateway/internal/pkg/log"
)

// SessionOptions - параметры Store запроса.
type SessionOptions struct {
	Names   auth.CookieNames
	Cookies auth.CookieOptions
	// Diagnostics включает debug-логи Store (вне prod).
	Diagnostics bool
}

// Session создаёт Store поверх cookie запроса, синхронизирует его
// и кладёт в контекст (auth.FromContext).
func Session(opts SessionOptions) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			jar := auth.NewHTTPJar(w, r, opts.Cookies)

			var l *slog.Logger
			if opts.Diagnostics {
				l = logctx.From(r.Context())
			}

			store := auth.NewStore(jar, opts.Names, l)
			store.Sync()

			next.ServeHTTP(w, r.WithContext(auth.Into(r.Context(), store)))
		})
	}
}

// RequireAuth пропускает только запросы с учётными данными.
// Браузерная навигация (Accept: text/html) уходит редиректом на вход,
// остальным - 401 с redirect_url.
func RequireAuth(signInURL string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auth.FromContext(r.Context()).IsAuthenticated() {
				next.ServeHTTP(w, r)
				return
			}

			target := navigate.SignInURL(signInURL, r.URL.RequestURI())

			if strings.Contains(r.Header.Get("Accept"), "text/html") {
				http.Redirect(w, r, target, http.StatusFound)
				return
			}

			apierrors.WriteError(w, r, &apierrors.Error{
				Kind:        apierrors.KindUnauthenticated,
				Endpoint:    r.URL.Path,
				RedirectURL: target,
			})
		})
	}
}
