package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger emits one structured line per request. 5xx responses log at error,
// 4xx at warn and everything else at info.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			routePattern := ""
			if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
				routePattern = routeCtx.RoutePattern()
			}

			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"route", routePattern,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration_ms", float64(time.Since(start).Microseconds()) / 1000.0,
				"request_id", chimiddleware.GetReqID(r.Context()),
				"client_ip", IPKeyFunc(r),
				"user_agent", r.UserAgent(),
			}

			switch {
			case status >= http.StatusInternalServerError:
				logger.ErrorContext(r.Context(), "http.request", attrs...)
			case status >= http.StatusBadRequest:
				logger.WarnContext(r.Context(), "http.request", attrs...)
			default:
				logger.InfoContext(r.Context(), "http.request", attrs...)
			}
		})
	}
}

// StructuredRequestLogger logs through slog.Default.
func StructuredRequestLogger(next http.Handler) http.Handler {
	return RequestLogger(nil)(next)
}
