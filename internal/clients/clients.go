// clients - REST-клиент бэкенда друзей/чатов/групп.
// Здесь же единая классификация отказов: каждый вызов возвращает
// либо результат, либо *apierrors.Error.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/pribylovaa/friends-gateway/internal/auth"
	"github.com/pribylovaa/friends-gateway/internal/cache"
	"github.com/pribylovaa/friends-gateway/internal/clients/interceptors"
	"github.com/pribylovaa/friends-gateway/internal/config"
	apierrors "github.com/pribylovaa/friends-gateway/internal/errors"
	"github.com/pribylovaa/friends-gateway/internal/metrics"
	"github.com/pribylovaa/friends-gateway/internal/models"
	"github.com/pribylovaa/friends-gateway/internal/normalize"
	"github.com/pribylovaa/friends-gateway/internal/pkg/log"
)

// maxBody - предел читаемого тела ответа.
const maxBody = 10 << 20

// Deps - зависимости клиента. Nil-поля заменяются значениями по умолчанию.
type Deps struct {
	Normalizer *normalize.Normalizer
	Cache      cache.SearchCache
	Logger     *slog.Logger
	Transport  http.RoundTripper
}

// Client - клиент бэкенда.
type Client struct {
	http      *http.Client
	base      *url.URL
	ep        config.EndpointsConfig
	authPaths []string
	norm      *normalize.Normalizer
	cache     cache.SearchCache
}

// New собирает клиент. Цепочка транспорта: metadata -> timeout -> logging -> metrics.
func New(cfg config.Config, deps Deps) (*Client, error) {
	const op = "internal/clients/New"

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("%s: empty backend base url", op)
	}

	base, err := url.Parse(cfg.Backend.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !base.IsAbs() {
		return nil, fmt.Errorf("%s: backend base url %q is not absolute", op, cfg.Backend.BaseURL)
	}

	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Normalizer == nil {
		deps.Normalizer = normalize.New(nil)
	}
	if deps.Cache == nil {
		deps.Cache = cache.Nop{}
	}

	transport := interceptors.Chain(deps.Transport,
		interceptors.WithMetadata(cfg.Backend.UserAgent),
		interceptors.WithTimeout(cfg.Backend.Timeout),
		interceptors.Logging(deps.Logger),
		interceptors.Metrics(),
	)

	return &Client{
		http:      &http.Client{Transport: transport},
		base:      base,
		ep:        cfg.Endpoints,
		authPaths: cfg.Endpoints.Auth.CredentialPaths(),
		norm:      deps.Normalizer,
		cache:     deps.Cache,
	}, nil
}

// request - описание одного вызова бэкенда.
type request struct {
	method      string
	endpoint    string
	query       url.Values
	body        io.Reader
	contentType string
}

func jsonRequest(method, endpoint string, payload any) (request, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return request{}, err
	}

	return request{
		method:      method,
		endpoint:    endpoint,
		body:        bytes.NewReader(raw),
		contentType: "application/json",
	}, nil
}

// do выполняет вызов и возвращает тело 2xx-ответа.
// Любой отказ классифицируется ровно один раз, здесь.
func (c *Client) do(ctx context.Context, r request) ([]byte, error) {
	u := c.base.JoinPath(r.endpoint)
	if len(r.query) > 0 {
		u.RawQuery = r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), r.body)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", r.endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Клиент шлюза ушёл сам: это не сетевой сбой бэкенда.
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, fmt.Errorf("%s: %w", r.endpoint, ctx.Err())
		}
		return nil, c.fail(ctx, apierrors.FromTransport(r.endpoint, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, c.fail(ctx, apierrors.FromTransport(r.endpoint, err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.fail(ctx, apierrors.FromStatus(r.endpoint, c.isAuthEndpoint(r.endpoint), resp.StatusCode, body))
	}

	if e := apierrors.FromBody(r.endpoint, body); e != nil {
		return nil, c.fail(ctx, e)
	}

	return body, nil
}

// fail - побочные эффекты классифицированного отказа.
// 401 на защищённом эндпоинте сбрасывает учётные данные запроса.
func (c *Client) fail(ctx context.Context, e *apierrors.Error) *apierrors.Error {
	_, l := log.With(ctx,
		slog.String("endpoint", e.Endpoint),
		slog.String("kind", string(e.Kind)),
		slog.Int("status", e.Status),
	)

	switch e.Kind {
	case apierrors.KindUnauthenticated:
		if e.AuthEndpoint {
			l.Info("backend_credentials_rejected")
			break
		}
		if store := auth.FromContext(ctx); store != nil {
			store.Clear()
			metrics.SessionsCleared.Inc()
		}
		l.Warn("session_cleared")
	case apierrors.KindForbidden:
		l.Warn("backend_access_denied")
	case apierrors.KindServer, apierrors.KindNetwork, apierrors.KindTimeout:
		attrs := []any{}
		if e.Err != nil {
			attrs = append(attrs, slog.String("err", e.Err.Error()))
		}
		l.Error("backend_unavailable", attrs...)
	case apierrors.KindApplication:
		l.Warn("backend_application_error", slog.String("message", e.Message))
	default:
		l.Debug("backend_request_failed")
	}

	return e
}

// isAuthEndpoint - эндпоинты входа/проверки учётных данных.
func (c *Client) isAuthEndpoint(endpoint string) bool {
	if slices.Contains(c.authPaths, endpoint) {
		return true
	}

	for _, marker := range []string{"/login", "/auth", "/verify"} {
		if strings.Contains(endpoint, marker) {
			return true
		}
	}

	return false
}

// decode разбирает JSON-тело в out. Пустое тело оставляет out нетронутым.
func decode(endpoint string, body []byte, out any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apierrors.Malformed(endpoint, err)
	}

	return nil
}

// decodeData как decode, но сначала снимает обёртку {data: X}, если она есть.
func decodeData(endpoint string, body []byte, out any) error {
	return decode(endpoint, unwrapData(body), out)
}

func unwrapData(body []byte) []byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return body
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return body
	}

	data, ok := env["data"]
	if !ok || len(data) == 0 || string(data) == "null" {
		return body
	}

	return data
}

// mutation разбирает типовой ответ мутации. Пустое тело - успех;
// отсутствующее поле success считается true.
func mutation(body []byte) models.MutationResult {
	body = unwrapData(body)
	if len(bytes.TrimSpace(body)) == 0 {
		return models.MutationResult{Success: true}
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		// не объект (например, "ok") - бэкенд уже ответил 2xx
		return models.MutationResult{Success: true}
	}

	res := models.MutationResult{Success: true}
	if v, ok := raw["success"].(bool); ok {
		res.Success = v
	}
	if v, ok := raw["message"].(string); ok {
		res.Message = v
	}

	return res
}
