package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-task-manager/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-manager/internal/domain"
	"github.com/jsamuelsen11/go-task-manager/internal/domain/task"
	"github.com/jsamuelsen11/go-task-manager/internal/ports"
)

const (
	orderAsc  = "asc"
	orderDesc = "desc"
)

// taskID extracts the {id} path parameter. Ids are opaque strings; an empty
// one cannot match a task.
func taskID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		return "", &domain.ValidationError{
			Fields: map[string]string{"id": domain.MsgRequired},
		}
	}
	return id, nil
}

// parseTaskQuery reads the list query parameters:
//
//	priority=High|Medium|Low|All  completed=true|false  q=<search>
//	sort=priority|title           order=asc|desc
//
// Without an order, priority sorts High first and title sorts A to Z.
func parseTaskQuery(r *http.Request) (ports.TaskQuery, error) {
	params := r.URL.Query()
	fields := make(map[string]string)
	var q ports.TaskQuery

	if raw := params.Get("priority"); raw != "" {
		p := task.Priority(raw)
		if p != task.PriorityAll && !p.IsValid() {
			fields["priority"] = "must be High, Medium, Low, or All"
		}
		q.Filter.Priority = p
	}

	if raw := params.Get("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			fields["completed"] = "must be true or false"
		} else {
			q.Filter.Completed = &completed
		}
	}

	q.Search = params.Get("q")

	switch sort := ports.SortField(params.Get("sort")); sort {
	case ports.SortNone, ports.SortPriority, ports.SortTitle:
		q.Sort = sort
	default:
		fields["sort"] = "must be priority or title"
	}

	switch order := params.Get("order"); order {
	case orderAsc:
		q.Ascending = true
	case orderDesc:
		q.Ascending = false
	case "":
		q.Ascending = q.Sort == ports.SortTitle
	default:
		fields["order"] = "must be asc or desc"
	}

	if len(fields) > 0 {
		return ports.TaskQuery{}, &domain.ValidationError{Fields: fields}
	}
	return q, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// maxImportBodyBytes bounds an import payload (10 MB).
const maxImportBodyBytes = 10 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// readBody returns the raw request body, bounded by limit. On failure it
// writes a 400 error response and returns false.
func readBody(w http.ResponseWriter, r *http.Request, limit int64) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	b, err := io.ReadAll(r.Body)
	if err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "unreadable or too large"},
		})
		return "", false
	}
	return string(b), true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
