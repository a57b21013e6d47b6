package interceptors

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/friends-gateway/internal/auth"
	"github.com/pribylovaa/friends-gateway/internal/metrics"
	"github.com/pribylovaa/friends-gateway/internal/pkg/log"
)

type capHandler struct {
	base    []slog.Attr
	lastMsg string
	lastLvl slog.Level
	attrs   map[string]any
	count   map[string]int
}

func (h *capHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h *capHandler) Handle(_ context.Context, r slog.Record) error {
	out := make(map[string]any, len(h.base)+8)
	for _, a := range h.base {
		out[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.Any()
		return true
	})
	if h.count == nil {
		h.count = make(map[string]int)
	}
	h.count[r.Message]++
	h.lastMsg = r.Message
	h.lastLvl = r.Level
	h.attrs = out
	return nil
}

func (h *capHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.base = append(h.base, attrs...)
	return h
}

func (h *capHandler) WithGroup(string) slog.Handler { return h }

// terminal - конечный транспорт, запоминает последний запрос.
func terminal(status int, seen **http.Request) http.RoundTripper {
	return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		if seen != nil {
			*seen = r
		}
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader("{}")),
			Header:     http.Header{},
			Request:    r,
		}, nil
	})
}

func newReq(ctx context.Context, path string) *http.Request {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "http://backend.local"+path, nil)
	return req
}

func TestChain_Order(t *testing.T) {
	t.Parallel()

	order := []string{}
	mark := func(name string) Interceptor {
		return func(next http.RoundTripper) http.RoundTripper {
			return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
				order = append(order, name)
				return next.RoundTrip(r)
			})
		}
	}

	rt := Chain(terminal(http.StatusOK, nil), mark("a"), mark("b"))
	resp, err := rt.RoundTrip(newReq(context.Background(), "/x"))
	require.NoError(t, err)
	_ = resp.Body.Close()

	require.Equal(t, []string{"a", "b"}, order)
}

func TestWithMetadata_AppendsHeaders(t *testing.T) {
	t.Parallel()

	const rid = "rid-123"
	const ua = "friends-gateway"

	store := auth.NewStore(auth.MemoryJar{"login": "abc"}, auth.DefaultCookieNames(), nil)
	ctx := context.WithValue(context.Background(), CtxRequestID, rid)
	ctx = auth.Into(ctx, store)

	var seen *http.Request
	rt := Chain(terminal(http.StatusOK, &seen), WithMetadata(ua))

	orig := newReq(ctx, "/friends/list")
	_, err := rt.RoundTrip(orig)
	require.NoError(t, err)

	require.Equal(t, rid, seen.Header.Get("X-Request-Id"))
	require.Equal(t, "Bearer abc", seen.Header.Get("Authorization"))
	require.Equal(t, ua, seen.Header.Get("User-Agent"))
	require.Empty(t, orig.Header.Get("Authorization"), "original request is not mutated")
}

func TestWithMetadata_SkipEmptyValues(t *testing.T) {
	t.Parallel()

	var seen *http.Request
	rt := Chain(terminal(http.StatusOK, &seen), WithMetadata(""))

	_, err := rt.RoundTrip(newReq(context.Background(), "/friends/list"))
	require.NoError(t, err)

	require.Empty(t, seen.Header.Get("X-Request-Id"))
	require.Empty(t, seen.Header.Get("Authorization"))
	require.Empty(t, seen.Header.Get("User-Agent"))
}

func TestWithMetadata_KeepsExplicitAuthorization(t *testing.T) {
	t.Parallel()

	store := auth.NewStore(auth.MemoryJar{"login": "abc"}, auth.DefaultCookieNames(), nil)

	var seen *http.Request
	rt := Chain(terminal(http.StatusOK, &seen), WithMetadata(""))

	req := newReq(auth.Into(context.Background(), store), "/logout")
	req.Header.Set("Authorization", "Bearer explicit")
	_, err := rt.RoundTrip(req)
	require.NoError(t, err)

	require.Equal(t, "Bearer explicit", seen.Header.Get("Authorization"))
}

func TestWithTimeout_SetsDeadline_UntilBodyClosed(t *testing.T) {
	t.Parallel()

	var seen *http.Request
	rt := Chain(terminal(http.StatusOK, &seen), WithTimeout(time.Second))

	resp, err := rt.RoundTrip(newReq(context.Background(), "/x"))
	require.NoError(t, err)

	_, ok := seen.Context().Deadline()
	require.True(t, ok)
	require.NoError(t, seen.Context().Err(), "context stays alive while the body is open")

	require.NoError(t, resp.Body.Close())
	require.ErrorIs(t, seen.Context().Err(), context.Canceled)
}

func TestWithTimeout_InvokerSeesDeadlineExceeded(t *testing.T) {
	t.Parallel()

	const d = 40 * time.Millisecond
	slow := RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		<-r.Context().Done()
		return nil, r.Context().Err()
	})

	start := time.Now()
	_, err := Chain(slow, WithTimeout(d)).RoundTrip(newReq(context.Background(), "/sleep"))
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.GreaterOrEqual(t, time.Since(start), d)
}

func TestWithTimeout_DoesNotOverrideExistingDeadline(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()
	parentDL, _ := parent.Deadline()

	var seen *http.Request
	_, err := Chain(terminal(http.StatusOK, &seen), WithTimeout(time.Second)).RoundTrip(newReq(parent, "/x"))
	require.NoError(t, err)

	childDL, ok := seen.Context().Deadline()
	require.True(t, ok)
	require.WithinDuration(t, parentDL, childDL, time.Millisecond)
}

func TestWithTimeout_ZeroDuration_PassThrough(t *testing.T) {
	t.Parallel()

	var seen *http.Request
	_, err := Chain(terminal(http.StatusOK, &seen), WithTimeout(0)).RoundTrip(newReq(context.Background(), "/x"))
	require.NoError(t, err)

	_, hasDL := seen.Context().Deadline()
	require.False(t, hasDL, "no deadline expected when d <= 0")
}

func TestLogging_LogsAndPutsLoggerIntoContext(t *testing.T) {
	t.Parallel()

	h := &capHandler{}
	base := slog.New(h)

	inner := RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		log.From(r.Context()).Info("probe")
		return terminal(http.StatusCreated, nil).RoundTrip(r)
	})

	req := newReq(context.Background(), "/friends/invite")
	req.Header.Set("Authorization", "Bearer secret-token")

	_, err := Chain(inner, Logging(base)).RoundTrip(req)
	require.NoError(t, err)

	require.Equal(t, 1, h.count["probe"])
	require.Equal(t, "http_client", h.lastMsg)
	require.Equal(t, slog.LevelInfo, h.lastLvl)
	require.Equal(t, int64(http.StatusCreated), h.attrs["status"])
	require.Equal(t, "/friends/invite", h.attrs["endpoint"])
	require.Equal(t, "Bearer [REDACTED_TOKEN]", h.attrs["auth"])

	rid, _ := h.attrs["request_id"].(string)
	_, err = uuid.Parse(rid)
	require.NoError(t, err, "generated request id is a UUID")
}

func TestLogging_TransportError(t *testing.T) {
	t.Parallel()

	h := &capHandler{}
	boom := RoundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := Chain(boom, Logging(slog.New(h))).RoundTrip(newReq(context.Background(), "/x"))
	require.Error(t, err)
	require.Equal(t, slog.LevelWarn, h.lastLvl)
	require.Equal(t, "connection refused", h.attrs["err"])
}

func TestMetrics_CountsByClass(t *testing.T) {
	t.Parallel()

	c := metrics.BackendRequests.WithLabelValues(http.MethodGet, "/metrics-probe", "5xx")
	before := testutil.ToFloat64(c)

	_, err := Chain(terminal(http.StatusBadGateway, nil), Metrics()).RoundTrip(newReq(context.Background(), "/metrics-probe"))
	require.NoError(t, err)

	require.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestChain_WorksWithRealServer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Header.Get("Authorization")))
	}))
	t.Cleanup(srv.Close)

	store := auth.NewStore(auth.MemoryJar{"token": `"tok"`}, auth.DefaultCookieNames(), nil)
	client := &http.Client{Transport: Chain(nil, WithMetadata("ua"), WithTimeout(time.Second), Metrics())}

	req, err := http.NewRequestWithContext(auth.Into(context.Background(), store), http.MethodGet, srv.URL+"/x", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "Bearer tok", string(body))
}
