package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-task-manager/internal/app/store"
	"github.com/jsamuelsen11/go-task-manager/internal/domain/task"
	"github.com/jsamuelsen11/go-task-manager/internal/platform/logging"
	"github.com/jsamuelsen11/go-task-manager/internal/ports"
)

// LoadStore builds a Store from the tasks held by repo. Stored rows that break
// the task rules are dropped with a warning. A load failure is returned rather
// than starting empty, since the first save would then overwrite the data.
func LoadStore(ctx context.Context, repo ports.TaskRepository, logger *slog.Logger, opts ...store.Option) (*store.Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load tasks",
			logging.Operation("LoadStore"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	valid, dropped := task.Sanitize(loaded)
	if dropped > 0 {
		logger.WarnContext(ctx, "dropped invalid stored tasks",
			slog.Int("loaded", len(valid)),
			slog.Int("dropped", dropped),
		)
	}

	logger.InfoContext(ctx, "tasks loaded", slog.Int("count", len(valid)))
	return store.New(valid, opts...), nil
}
