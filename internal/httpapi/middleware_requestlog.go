package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// RequestLogMiddleware logs every request and tags it with a request id.
type RequestLogMiddleware struct {
	logger zerolog.Logger
}

// NewRequestLogMiddleware creates a new request logging middleware.
func NewRequestLogMiddleware(logger zerolog.Logger) *RequestLogMiddleware {
	return &RequestLogMiddleware{
		logger: logger.With().Str("component", "access").Logger(),
	}
}

// Handler wraps an http.Handler with request logging.
func (m *RequestLogMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, requestID)

		wrapped := &statusResponseWriter{
			ResponseWriter: w,
			status:         http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		event := m.logger.Info()
		if wrapped.status >= http.StatusInternalServerError {
			event = m.logger.Warn()
		}

		event.
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Int("status", wrapped.status).
			Dur("duration", time.Since(start))

		if ua := r.Header.Get("User-Agent"); ua != "" {
			event.Str("user_agent", ua)
		}

		if cl := r.ContentLength; cl > 0 {
			event.Int64("content_length", cl)
		}

		event.Msg("Request")
	})
}

// statusResponseWriter wraps http.ResponseWriter to capture the status code.
type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

// WriteHeader captures the status code before calling the underlying WriteHeader.
func (w *statusResponseWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// Write captures the status code (defaults to 200) if WriteHeader wasn't called.
func (w *statusResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.status = http.StatusOK
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap returns the underlying ResponseWriter for middleware compatibility.
func (w *statusResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
