package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"unicode/utf8"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind - класс отказа при обращении к бэкенду.
type Kind string

const (
	KindMalformed       Kind = "malformed_response"
	KindUnauthenticated Kind = "unauthenticated"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindBadRequest      Kind = "bad_request"
	KindConflict        Kind = "conflict"
	KindServer          Kind = "server"
	KindNetwork         Kind = "network"
	KindTimeout         Kind = "timeout"
	KindApplication     Kind = "application"
)

// Notice - уведомление для пользователя (заголовок + описание).
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var (
	NoticeSessionExpired = Notice{Title: "Session expired", Description: "Please log in again to continue."}
	NoticeAccessDenied   = Notice{Title: "Access denied", Description: "You don't have permission to perform this action."}
	NoticeServerError    = Notice{Title: "Server error", Description: "Something went wrong on our end. Please try again later."}
	NoticeNetworkError   = Notice{Title: "Network error", Description: "Please check your internet connection and try again."}
)

const maxMessageLen = 200

// Error - классифицированный отказ бэкенда.
type Error struct {
	Kind     Kind
	Status   int    // HTTP-статус бэкенда; 0 для транспортных отказов
	Endpoint string // путь бэкенда
	Message  string // сообщение из тела ответа, если было
	Notice   *Notice

	// AuthEndpoint - отказ пришёл от эндпоинта входа/проверки;
	// такой 401 не означает истёкшую сессию.
	AuthEndpoint bool
	RedirectURL  string

	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "backend %s: %s", e.Endpoint, e.Kind)
	if e.Status > 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// GRPCStatus позволяет status.FromError/status.Code работать с *Error.
func (e *Error) GRPCStatus() *status.Status {
	return status.New(e.Code(), e.safeMessage())
}

// Code - Kind в словаре gRPC codes.
func (e *Error) Code() codes.Code {
	switch e.Kind {
	case KindUnauthenticated:
		return codes.Unauthenticated
	case KindForbidden:
		return codes.PermissionDenied
	case KindNotFound:
		return codes.NotFound
	case KindBadRequest:
		return codes.InvalidArgument
	case KindConflict:
		return codes.AlreadyExists
	case KindNetwork:
		return codes.Unavailable
	case KindTimeout:
		return codes.DeadlineExceeded
	case KindApplication:
		return codes.FailedPrecondition
	case KindMalformed:
		return codes.DataLoss
	default:
		return codes.Internal
	}
}

// httpStatus - статус ответа шлюза фронту.
func (e *Error) httpStatus() int {
	switch e.Kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindTimeout:
		return http.StatusGatewayTimeout
	case KindNetwork:
		return http.StatusServiceUnavailable
	case KindApplication:
		if e.Status >= 400 && e.Status < 600 {
			return e.Status
		}
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// safeMessage: сообщения бэкенда пропускаем только для ошибок,
// которые фронт показывает пользователю (400/409/прикладные).
func (e *Error) safeMessage() string {
	switch e.Kind {
	case KindBadRequest, KindConflict, KindApplication:
		if e.Message != "" {
			return e.Message
		}
	}

	switch e.Kind {
	case KindMalformed:
		return "malformed backend response"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "permission denied"
	case KindNotFound:
		return "not found"
	case KindBadRequest:
		return "invalid argument"
	case KindConflict:
		return "already exists"
	case KindNetwork:
		return "backend unavailable"
	case KindTimeout:
		return "backend timeout"
	case KindApplication:
		return "request failed"
	default:
		return "backend error"
	}
}

// Is позволяет errors.Is(err, &Error{Kind: ...}) сравнивать по Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind && (t.Status == 0 || t.Status == e.Status)
}

// KindOf возвращает Kind из цепочки ошибок или "".
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}

	return ""
}

// FromStatus классифицирует не-2xx ответ бэкенда.
// 401 от auth-эндпоинта - неверные учётные данные, а не истёкшая сессия:
// уведомление не ставится.
func FromStatus(endpoint string, authEndpoint bool, httpStatus int, body []byte) *Error {
	e := &Error{
		Status:       httpStatus,
		Endpoint:     endpoint,
		Message:      bodyMessage(body),
		AuthEndpoint: authEndpoint,
	}

	switch {
	case httpStatus == http.StatusUnauthorized:
		e.Kind = KindUnauthenticated
		if !authEndpoint {
			e.Notice = notice(NoticeSessionExpired)
		}
	case httpStatus == http.StatusForbidden:
		e.Kind = KindForbidden
		e.Notice = notice(NoticeAccessDenied)
	case httpStatus == http.StatusNotFound:
		e.Kind = KindNotFound
	case httpStatus == http.StatusConflict:
		e.Kind = KindConflict
	case httpStatus == http.StatusRequestTimeout || httpStatus == http.StatusGatewayTimeout:
		e.Kind = KindTimeout
		e.Notice = notice(NoticeServerError)
	case httpStatus >= 500:
		e.Kind = KindServer
		e.Notice = notice(NoticeServerError)
	default:
		e.Kind = KindBadRequest
	}

	return e
}

// FromTransport классифицирует отказ до получения ответа.
func FromTransport(endpoint string, err error) *Error {
	e := &Error{Kind: KindNetwork, Endpoint: endpoint, Err: err, Notice: notice(NoticeNetworkError)}

	var ne net.Error
	if stderrors.Is(err, context.DeadlineExceeded) || (stderrors.As(err, &ne) && ne.Timeout()) {
		e.Kind = KindTimeout
		e.Notice = notice(NoticeServerError)
	}

	return e
}

// FromBody находит прикладную ошибку в 2xx-ответе вида {error, status>=400}.
// nil - ошибки нет.
func FromBody(endpoint string, body []byte) *Error {
	var probe struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
		Status  json.Number     `json:"status"`
	}
	if err := json.Unmarshal(body, &probe); err != nil || len(probe.Error) == 0 || string(probe.Error) == "null" {
		return nil
	}

	code, err := probe.Status.Int64()
	if err != nil || code < 400 {
		return nil
	}

	msg := bodyMessage(body)
	if msg == "" {
		msg = "request failed"
	}

	return &Error{
		Kind:     KindApplication,
		Status:   int(code),
		Endpoint: endpoint,
		Message:  msg,
		Notice:   &Notice{Title: "Request failed", Description: msg},
	}
}

// Malformed - тело ответа не удалось разобрать.
func Malformed(endpoint string, err error) *Error {
	return &Error{Kind: KindMalformed, Endpoint: endpoint, Err: err}
}

// bodyMessage достаёт сообщение из {message}, {error: "..."} или {error: {message}};
// иначе - усечённый текст тела.
func bodyMessage(body []byte) string {
	body = []byte(strings.TrimSpace(string(body)))
	if len(body) == 0 {
		return ""
	}

	var probe map[string]any
	if err := json.Unmarshal(body, &probe); err == nil {
		if s, ok := probe["message"].(string); ok && s != "" {
			return truncate(s)
		}
		switch v := probe["error"].(type) {
		case string:
			return truncate(v)
		case map[string]any:
			if s, ok := v["message"].(string); ok {
				return truncate(s)
			}
		}
		return ""
	}

	if body[0] == '<' {
		// html-страница ошибки прокси
		return ""
	}

	return truncate(string(body))
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxMessageLen {
		return s
	}

	return string([]rune(s)[:maxMessageLen])
}

func notice(n Notice) *Notice { return &n }
