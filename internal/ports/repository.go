package ports

import (
	"context"

	"github.com/jsamuelsen11/go-task-manager/internal/domain/task"
)

// TaskRepository persists the full task sequence. Implementations live in
// internal/adapters/persistence and internal/adapters/clients.
type TaskRepository interface {
	// Load returns the stored sequence in insertion order. A repository that
	// has never been saved to returns an empty slice and a nil error.
	Load(ctx context.Context) ([]task.Task, error)

	// Save replaces the stored sequence with tasks.
	Save(ctx context.Context, tasks []task.Task) error
}

// IDGenerator produces identifiers for newly created tasks.
type IDGenerator interface {
	NewID() string
}
