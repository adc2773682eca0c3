package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-task-manager/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-manager/internal/platform/logging"
	"github.com/jsamuelsen11/go-task-manager/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	tasks    ports.TaskService
}

// NewHealthHandler creates a HealthHandler. tasks may be nil, in which case
// readiness leaves out the task count.
func NewHealthHandler(registry ports.HealthRegistry, tasks ports.TaskService) *HealthHandler {
	return &HealthHandler{registry: registry, tasks: tasks}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready: 200 when every store dependency
// answers, 503 otherwise. Failed checks are logged at WARN.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	results := h.registry.CheckAll(ctx)

	resp := dto.ReadinessResponse{
		Status: statusReady,
		Checks: make(map[string]string, len(results)),
	}
	code := http.StatusOK
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
		logging.FromContext(ctx).WarnContext(ctx, "readiness check failed",
			slog.String("check", name),
			slog.Any("error", err),
		)
	}

	if h.tasks != nil {
		total := h.tasks.Statistics(ctx).TotalTasks
		resp.Tasks = &total
	}

	writeJSON(w, code, resp)
}
