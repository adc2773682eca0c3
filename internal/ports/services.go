package ports

import (
	"context"

	"github.com/jsamuelsen11/go-task-manager/internal/domain/task"
)

// TaskService defines the service port for task operations.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers, CLI). Every mutation is applied to the in-memory store before the
// call returns; persistence follows as a side effect and never rolls it back.
type TaskService interface {
	// AddTask creates a task with a store-assigned ID and Completed=false.
	// Returns domain.ErrValidation if the title is blank or too long, or the
	// priority is invalid.
	AddTask(ctx context.Context, title string, priority task.Priority) (task.Task, error)

	// EditTask replaces every field of the task with the same ID.
	// Returns domain.ErrValidation or domain.ErrNotFound.
	EditTask(ctx context.Context, t task.Task) (task.Task, error)

	// DeleteTask removes a task. Returns domain.ErrNotFound if absent.
	DeleteTask(ctx context.Context, id string) error

	// ToggleTaskCompletion flips Completed. Returns domain.ErrNotFound if absent.
	ToggleTaskCompletion(ctx context.Context, id string) (task.Task, error)

	// GetTask returns a single task. Returns domain.ErrNotFound if absent.
	GetTask(ctx context.Context, id string) (task.Task, error)

	// ListTasks returns the tasks matching q. A zero-value TaskQuery returns
	// every task in insertion order.
	ListTasks(ctx context.Context, q TaskQuery) []task.Task

	// Statistics returns aggregate counts over all tasks.
	Statistics(ctx context.Context) task.Statistics

	// ExportTasks renders every task as pretty-printed JSON.
	ExportTasks(ctx context.Context) (string, error)

	// ImportTasks replaces every task with the valid rows of payload.
	// Returns domain.ErrImport if payload is not a JSON array.
	ImportTasks(ctx context.Context, payload string) (ImportResult, error)

	// ValidateTask checks a draft without changing any state.
	ValidateTask(ctx context.Context, d task.Draft) task.ValidationResult

	// MarkAll sets Completed on every task.
	MarkAll(ctx context.Context, completed bool)

	// ClearCompleted removes completed tasks and returns them.
	ClearCompleted(ctx context.Context) []task.Task

	// ClearAll removes every task.
	ClearAll(ctx context.Context)
}

// SortField selects the ordering applied by ListTasks.
type SortField string

const (
	SortNone     SortField = ""
	SortPriority SortField = "priority"
	SortTitle    SortField = "title"
)

// TaskQuery combines filtering, search, and ordering for ListTasks.
// Filtering and search run first and preserve insertion order; the sort,
// when set, is stable.
type TaskQuery struct {
	Filter    task.Filter
	Search    string
	Sort      SortField
	Ascending bool
}

// ImportResult reports the outcome of an import.
type ImportResult struct {
	Tasks   []task.Task
	Skipped int
}
