// errors стандартизирует ошибки шлюза: классификацию ответов бэкенда
// и единый формат ответа фронту.
//
// На вход:
//   - *Error, построенная клиентом бэкенда (Kind + уведомление для пользователя);
//   - gRPC-статус (локальная валидация хендлеров использует codes как словарь);
//   - прочие ошибки.
//
// На выход: корректный HTTP-статус и безопасное message без утечки деталей.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError - единый формат для фронта.
// Code - короткий стабильный код для машиночитаемой обработки на FE.
// Message - безопасное человекочитаемое описание.
// RequestID - прокидывается из X-Request-Id, если есть (для трассировки).
// Notice - готовое уведомление для показа пользователю.
// RedirectURL - куда отправить браузер (вход при истёкшей сессии).
type APIError struct {
	Code        string  `json:"code"`
	Message     string  `json:"message"`
	RequestID   string  `json:"request_id,omitempty"`
	Notice      *Notice `json:"notice,omitempty"`
	RedirectURL string  `json:"redirect_url,omitempty"`
}

// ErrorResponse - корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil - программная ошибка вызова: 500/internal;
//   - *Error в цепочке - статус и код по Kind, notice и redirect_url как есть;
//   - отмена контекста - 499/canceled, истёкший дедлайн - 504;
//   - gRPC-статус - маппинг через baseFromGRPC();
//   - прочее - 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return internal()
	}

	var e *Error
	if stderrors.As(err, &e) {
		httpStatus, msg := e.httpStatus(), e.safeMessage()
		return httpStatus, ErrorResponse{
			Error: APIError{
				Code:        string(e.Kind),
				Message:     msg,
				Notice:      e.Notice,
				RedirectURL: e.RedirectURL,
			},
		}
	}

	switch {
	case stderrors.Is(err, context.Canceled):
		err = status.Error(codes.Canceled, "canceled")
	case stderrors.Is(err, context.DeadlineExceeded):
		err = status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}

	st, ok := status.FromError(err)
	if !ok {
		return internal()
	}

	httpStatus, code, msg := baseFromGRPC(st.Code())
	return httpStatus, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError - хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func internal() (int, ErrorResponse) {
	return http.StatusInternalServerError, ErrorResponse{
		Error: APIError{
			Code:    "internal",
			Message: "internal error",
		},
	}
}

// baseFromGRPC - базовый маппинг gRPC -> HTTP/FE-код/сообщение.
//   - InvalidArgument (битые входные данные) -> 400
//   - NotFound -> 404
//   - AlreadyExists -> 409
//   - FailedPrecondition -> 412
//   - Unauthenticated -> 401
//   - PermissionDenied -> 403
//   - ResourceExhausted -> 429
//   - Aborted -> 409
//   - Canceled -> 499 (клиент закрыл соединение)
//   - DeadlineExceeded -> 504
//   - Unavailable -> 503
//   - Unimplemented -> 501
//   - прочее -> 500/internal
func baseFromGRPC(c codes.Code) (int, string, string) {
	switch c {
	case codes.InvalidArgument:
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case codes.NotFound:
		return http.StatusNotFound, "not_found", "not found"
	case codes.AlreadyExists:
		return http.StatusConflict, "already_exists", "already exists"
	case codes.FailedPrecondition:
		return http.StatusPreconditionFailed, "failed_precondition", "failed precondition"
	case codes.Unauthenticated:
		return http.StatusUnauthorized, "unauthenticated", "unauthenticated"
	case codes.PermissionDenied:
		return http.StatusForbidden, "permission_denied", "permission denied"
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests, "resource_exhausted", "resource exhausted"
	case codes.Aborted:
		return http.StatusConflict, "aborted", "aborted"
	case codes.Canceled:
		return StatusClientClosedRequest, "canceled", "canceled"
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	case codes.Unavailable:
		return http.StatusServiceUnavailable, "unavailable", "service unavailable"
	case codes.Unimplemented:
		return http.StatusNotImplemented, "unimplemented", "unimplemented"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
