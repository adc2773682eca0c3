// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-task-manager/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	taskHandler *handlers.TaskHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Delete("/", taskHandler.ClearAll)

		// Collection-level operations. Static segments win over {id}.
		r.Get("/stats", taskHandler.Statistics)
		r.Get("/export", taskHandler.ExportTasks)
		r.Post("/import", taskHandler.ImportTasks)
		r.Post("/validate", taskHandler.ValidateTask)
		r.Post("/complete-all", taskHandler.CompleteAll)
		r.Post("/incomplete-all", taskHandler.IncompleteAll)
		r.Delete("/completed", taskHandler.ClearCompleted)

		r.Get("/{id}", taskHandler.GetTask)
		r.Put("/{id}", taskHandler.UpdateTask)
		r.Delete("/{id}", taskHandler.DeleteTask)
		r.Post("/{id}/toggle", taskHandler.ToggleTask)
	})

	return r
}
