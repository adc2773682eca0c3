// Package remote implements ports.TaskRepository against another task
// manager's HTTP API: Load reads its export and Save replaces its tasks
// through its import endpoint. Transport concerns (circuit breaker, rate
// limiting, retry, tracing) come from platform/httpclient.
package remote

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-task-manager/internal/domain/task"
	"github.com/jsamuelsen11/go-task-manager/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-task-manager/internal/ports"
)

var (
	_ ports.TaskRepository = (*Repository)(nil)
	_ ports.HealthChecker  = (*Repository)(nil)
)

const (
	exportPath = "/api/v1/tasks/export"
	importPath = "/api/v1/tasks/import"
)

// importResponse is the subset of the import reply the repository reads.
type importResponse struct {
	Count   int `json:"count"`
	Skipped int `json:"skipped"`
}

// Repository is a remote task repository.
type Repository struct {
	client *httpclient.Client
	req    *requester
	logger *slog.Logger
}

// New creates a Repository over client. A nil logger discards output.
func New(client *httpclient.Client, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Repository{
		client: client,
		req:    &requester{client: client, logger: logger},
		logger: logger,
	}
}

// Load fetches the remote export.
func (r *Repository) Load(ctx context.Context) ([]task.Task, error) {
	tasks := []task.Task{}
	if err := r.req.do(ctx, http.MethodGet, exportPath, http.StatusOK, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Save replaces the remote tasks. Rows the remote side drops are logged.
func (r *Repository) Save(ctx context.Context, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}

	var res importResponse
	if err := r.req.do(ctx, http.MethodPost, importPath, http.StatusOK, tasks, &res); err != nil {
		return err
	}

	if res.Skipped > 0 {
		r.logger.WarnContext(ctx, "remote store skipped tasks",
			slog.Int("sent", len(tasks)),
			slog.Int("skipped", res.Skipped),
		)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string {
	return r.client.Name()
}

// HealthCheck reports the circuit breaker state of the underlying client.
func (r *Repository) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}
