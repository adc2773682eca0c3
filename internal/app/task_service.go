// Package app provides application services that orchestrate use cases by
// coordinating between the task store and infrastructure through port
// interfaces.
package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/go-task-manager/internal/app/store"
	"github.com/jsamuelsen11/go-task-manager/internal/domain"
	"github.com/jsamuelsen11/go-task-manager/internal/domain/task"
	"github.com/jsamuelsen11/go-task-manager/internal/platform/logging"
	"github.com/jsamuelsen11/go-task-manager/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-task-manager/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

const (
	resultSuccess = "success"
	resultError   = "error"
)

// TaskService implements ports.TaskService on top of a store.Store. It adds
// structured logging and mutation metrics; the rules themselves live in the
// store and the task package.
type TaskService struct {
	store   *store.Store
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewTaskService creates a TaskService over s. metrics may be nil. A nil
// logger discards output.
func NewTaskService(s *store.Store, metrics *telemetry.Metrics, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	svc := &TaskService{
		store:   s,
		metrics: metrics,
		logger:  logger,
	}
	if metrics != nil {
		s.Subscribe(svc.recordCount)
	}
	return svc
}

// AddTask creates a task with a fresh id.
func (s *TaskService) AddTask(ctx context.Context, title string, priority task.Priority) (task.Task, error) {
	s.logger.InfoContext(ctx, "adding task", slog.String("priority", priority.String()))

	created, err := s.store.AddTask(title, priority)
	s.recordMutation(ctx, "AddTask", err)
	if err != nil {
		s.logger.WarnContext(ctx, "task rejected",
			logging.Operation("AddTask"),
			slog.Any("error", err),
		)
		return task.Task{}, err
	}

	return created, nil
}

// EditTask replaces every field of the task with t.ID.
func (s *TaskService) EditTask(ctx context.Context, t task.Task) (task.Task, error) {
	s.logger.InfoContext(ctx, "editing task", logging.TaskID(t.ID))

	updated, err := s.store.EditTask(t)
	s.recordMutation(ctx, "EditTask", err)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to edit task",
			logging.Operation("EditTask"),
			logging.TaskID(t.ID),
			slog.Any("error", err),
		)
		return task.Task{}, err
	}

	return updated, nil
}

// DeleteTask removes the task with the given id.
func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting task", logging.TaskID(id))

	err := s.store.DeleteTask(id)
	s.recordMutation(ctx, "DeleteTask", err)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to delete task",
			logging.Operation("DeleteTask"),
			logging.TaskID(id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// ToggleTaskCompletion flips the completion flag of the task with the given id.
func (s *TaskService) ToggleTaskCompletion(ctx context.Context, id string) (task.Task, error) {
	s.logger.InfoContext(ctx, "toggling task", logging.TaskID(id))

	updated, err := s.store.ToggleTaskCompletion(id)
	s.recordMutation(ctx, "ToggleTaskCompletion", err)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to toggle task",
			logging.Operation("ToggleTaskCompletion"),
			logging.TaskID(id),
			slog.Any("error", err),
		)
		return task.Task{}, err
	}

	return updated, nil
}

// GetTask returns the task with the given id.
func (s *TaskService) GetTask(_ context.Context, id string) (task.Task, error) {
	t, ok := s.store.GetTask(id)
	if !ok {
		return task.Task{}, notFound(id)
	}
	return t, nil
}

// ListTasks applies the filter, then the search, then the sort.
func (s *TaskService) ListTasks(_ context.Context, q ports.TaskQuery) []task.Task {
	tasks := s.store.GetFilteredTasks(q.Filter)
	if q.Search != "" {
		tasks = task.Search(tasks, q.Search)
	}

	switch q.Sort {
	case ports.SortPriority:
		return task.SortByPriority(tasks, q.Ascending)
	case ports.SortTitle:
		return task.SortByTitle(tasks, q.Ascending)
	default:
		return tasks
	}
}

// Statistics returns aggregate counts over every task.
func (s *TaskService) Statistics(_ context.Context) task.Statistics {
	return s.store.GetStatistics()
}

// ExportTasks renders every task as pretty-printed JSON.
func (s *TaskService) ExportTasks(ctx context.Context) (string, error) {
	out, err := s.store.ExportTasks()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to export tasks",
			logging.Operation("ExportTasks"),
			slog.Any("error", err),
		)
		return "", err
	}
	return out, nil
}

// ImportTasks replaces every task with the valid rows of payload.
func (s *TaskService) ImportTasks(ctx context.Context, payload string) (ports.ImportResult, error) {
	s.logger.InfoContext(ctx, "importing tasks", slog.Int("bytes", len(payload)))

	res, err := s.store.ImportTasks(payload)
	s.recordMutation(ctx, "ImportTasks", err)
	if err != nil {
		s.logger.WarnContext(ctx, "import rejected",
			logging.Operation("ImportTasks"),
			slog.Any("error", err),
		)
		return ports.ImportResult{}, err
	}

	if res.Skipped > 0 {
		s.logger.WarnContext(ctx, "skipped invalid rows during import",
			slog.Int("imported", len(res.Tasks)),
			slog.Int("skipped", res.Skipped),
		)
	}
	return ports.ImportResult{Tasks: res.Tasks, Skipped: res.Skipped}, nil
}

// ValidateTask checks a draft without touching the store.
func (s *TaskService) ValidateTask(_ context.Context, d task.Draft) task.ValidationResult {
	return s.store.ValidateTask(d)
}

// MarkAll sets or clears the completion flag on every task.
func (s *TaskService) MarkAll(ctx context.Context, completed bool) {
	s.logger.InfoContext(ctx, "marking all tasks", slog.Bool("completed", completed))

	if completed {
		s.store.MarkAllCompleted()
	} else {
		s.store.MarkAllIncomplete()
	}
	s.recordMutation(ctx, "MarkAll", nil)
}

// ClearCompleted removes the completed tasks and returns them.
func (s *TaskService) ClearCompleted(ctx context.Context) []task.Task {
	removed := s.store.ClearCompleted()
	s.recordMutation(ctx, "ClearCompleted", nil)
	s.logger.InfoContext(ctx, "cleared completed tasks", slog.Int("removed", len(removed)))
	return removed
}

// ClearAll removes every task.
func (s *TaskService) ClearAll(ctx context.Context) {
	s.logger.InfoContext(ctx, "clearing all tasks")
	s.store.ClearAll()
	s.recordMutation(ctx, "ClearAll", nil)
}

func (s *TaskService) recordMutation(ctx context.Context, operation string, err error) {
	if s.metrics == nil {
		return
	}
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	s.metrics.TaskMutationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperation.String(operation),
		telemetry.AttrResult.String(result),
	))
}

func (s *TaskService) recordCount(snapshot []task.Task) {
	s.metrics.TaskCount.Record(context.Background(), int64(len(snapshot)))
}

func notFound(id string) error {
	return &domain.NotFoundError{Resource: "task", ID: id}
}
