package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/roadworks-backend/pkg/ctxutil"
)

// Logger logs one line per request and observes its latency. Mount it inside
// Auth so the session email is visible.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			elapsed := time.Since(start)
			requestDuration.WithLabelValues(r.Method, statusClass(sw.status)).Observe(elapsed.Seconds())

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", elapsed),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if email, ok := ctxutil.EmailFromCtx(r.Context()); ok {
				attrs = append(attrs, slog.String("email", email))
			}

			level := slog.LevelInfo
			if sw.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
