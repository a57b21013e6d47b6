// middleware - цепочка net/http мидлваров шлюза: recover, request id,
// логирование, дедлайн, сессия и проверка учётных данных.
package middleware

import "net/http"

type Middleware func(http.Handler) http.Handler

// Chain: первый мидлвар - внешний.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// statusWriter запоминает первый статус и число записанных байт.
type statusWriter struct {
	http.ResponseWriter
	status int
	count  int
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	if sw, ok := w.(*statusWriter); ok {
		return sw
	}
	return &statusWriter{ResponseWriter: w}
}

// written - ответ уже начат, заголовки менять поздно.
func (w *statusWriter) written() bool { return w.status != 0 }

func (w *statusWriter) WriteHeader(code int) {
	if w.written() {
		return
	}
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if !w.written() {
		w.WriteHeader(http.StatusOK)
	}

	n, err := w.ResponseWriter.Write(p)
	w.count += n
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
