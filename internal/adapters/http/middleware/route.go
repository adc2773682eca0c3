package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// taskIDParam is the route parameter that carries a task id.
const taskIDParam = "id"

// routeOf returns the matched route pattern and the task id captured by it.
// Both are empty before routing has run or outside a chi router.
func routeOf(r *http.Request) (pattern, taskID string) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "", ""
	}
	return rctx.RoutePattern(), rctx.URLParam(taskIDParam)
}

// routeAttrs describes the request for a log line: the route pattern when one
// matched, the raw path otherwise, plus the task id when the route has one.
func routeAttrs(r *http.Request) []any {
	pattern, taskID := routeOf(r)

	attrs := []any{slog.String("method", r.Method)}
	if pattern != "" {
		attrs = append(attrs, slog.String("route", pattern))
	} else {
		attrs = append(attrs, slog.String("path", r.URL.Path))
	}
	if taskID != "" {
		attrs = append(attrs, slog.String("task_id", taskID))
	}
	return attrs
}

func wrapWriter(w http.ResponseWriter, r *http.Request) chimw.WrapResponseWriter {
	return chimw.NewWrapResponseWriter(w, r.ProtoMajor)
}

// statusOf reports the status sent through ww. A handler that wrote nothing
// gets the server's implicit 200.
func statusOf(ww chimw.WrapResponseWriter) int {
	if code := ww.Status(); code != 0 {
		return code
	}
	return http.StatusOK
}
