package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-task-manager/internal/platform/logging"
)

// Logging writes one access log line per request and hands a request-scoped
// logger, tagged with the request and correlation ids, to everything below
// it through logging.WithLogger.
//
// The access line carries the route pattern rather than the raw path, so
// lines for different tasks group together, and the task id as its own
// attribute. Server errors log at ERROR, client errors at WARN, the rest at
// INFO. Request headers, redacted, are logged at DEBUG.
func Logging(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLogger := logger.With(
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("correlation_id", CorrelationIDFromContext(r.Context())),
			)
			ctx := logging.WithLogger(r.Context(), reqLogger)

			if reqLogger.Enabled(ctx, slog.LevelDebug) {
				reqLogger.DebugContext(ctx, "request received",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.GroupAttrs("headers", RedactHeaders(r.Header)...),
				)
			}

			ww := wrapWriter(w, r)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := statusOf(ww)
			attrs := append(routeAttrs(r),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			)
			reqLogger.Log(ctx, accessLevel(status), "request completed", attrs...)
		})
	}
}

func accessLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
