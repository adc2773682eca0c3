package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-task-manager/internal/adapters/http/middleware"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// taskRouter mounts mw the way the API does and serves h on the task routes.
func taskRouter(mw middleware.Middleware, h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(mw)
	r.Get("/api/v1/tasks", h)
	r.Get("/api/v1/tasks/{id}", h)
	r.Post("/api/v1/tasks/{id}/toggle", h)
	return r
}
