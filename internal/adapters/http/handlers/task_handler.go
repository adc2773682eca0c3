// Package handlers implements the HTTP handlers of the task API.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-task-manager/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-manager/internal/domain/task"
	"github.com/jsamuelsen11/go-task-manager/internal/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	svc ports.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(svc ports.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// ListTasks handles GET /api/v1/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	q, err := parseTaskQuery(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(h.svc.ListTasks(r.Context(), q)))
}

// CreateTask handles POST /api/v1/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.AddTask(r.Context(), req.Title, task.Priority(req.Priority))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(&created))
}

// GetTask handles GET /api/v1/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.svc.GetTask(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(&t))
}

// UpdateTask handles PUT /api/v1/tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var current bool
	if req.Completed == nil {
		existing, err := h.svc.GetTask(r.Context(), id)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		current = existing.Completed
	}

	updated, err := h.svc.EditTask(r.Context(), req.ToTask(id, current))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(&updated))
}

// DeleteTask handles DELETE /api/v1/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteTask(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleTask handles POST /api/v1/tasks/{id}/toggle.
func (h *TaskHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	updated, err := h.svc.ToggleTaskCompletion(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(&updated))
}

// Statistics handles GET /api/v1/tasks/stats.
func (h *TaskHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats := h.svc.Statistics(r.Context())
	writeJSON(w, http.StatusOK, dto.ToStatisticsResponse(&stats))
}

// ExportTasks handles GET /api/v1/tasks/export. The body is the export
// document itself, not a wrapper.
func (h *TaskHandler) ExportTasks(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ExportTasks(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(out))
}

// ImportTasks handles POST /api/v1/tasks/import. The body is an export
// document; it replaces every task.
func (h *TaskHandler) ImportTasks(w http.ResponseWriter, r *http.Request) {
	payload, ok := readBody(w, r, maxImportBodyBytes)
	if !ok {
		return
	}

	res, err := h.svc.ImportTasks(r.Context(), payload)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToImportResponse(&res))
}

// ValidateTask handles POST /api/v1/tasks/validate. Invalid drafts are a
// normal result, so the status is 200 either way.
func (h *TaskHandler) ValidateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateTaskRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	res := h.svc.ValidateTask(r.Context(), req.ToDraft())
	writeJSON(w, http.StatusOK, dto.ToValidationResponse(res))
}

// CompleteAll handles POST /api/v1/tasks/complete-all.
func (h *TaskHandler) CompleteAll(w http.ResponseWriter, r *http.Request) {
	h.markAll(w, r, true)
}

// IncompleteAll handles POST /api/v1/tasks/incomplete-all.
func (h *TaskHandler) IncompleteAll(w http.ResponseWriter, r *http.Request) {
	h.markAll(w, r, false)
}

func (h *TaskHandler) markAll(w http.ResponseWriter, r *http.Request, completed bool) {
	h.svc.MarkAll(r.Context(), completed)
	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(h.svc.ListTasks(r.Context(), ports.TaskQuery{})))
}

// ClearCompleted handles DELETE /api/v1/tasks/completed and returns the
// removed tasks.
func (h *TaskHandler) ClearCompleted(w http.ResponseWriter, r *http.Request) {
	removed := h.svc.ClearCompleted(r.Context())
	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(removed))
}

// ClearAll handles DELETE /api/v1/tasks.
func (h *TaskHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearAll(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
