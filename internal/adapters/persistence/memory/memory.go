// Package memory provides a process-local task repository.
package memory

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/go-task-manager/internal/domain/task"
	"github.com/jsamuelsen11/go-task-manager/internal/ports"
)

var _ ports.TaskRepository = (*Repository)(nil)

// Repository keeps the last saved sequence in memory.
type Repository struct {
	mu    sync.RWMutex
	tasks []task.Task
	saves int
}

// New creates a Repository seeded with a copy of initial.
func New(initial []task.Task) *Repository {
	return &Repository{tasks: task.Clone(initial)}
}

// Load returns a copy of the last saved sequence.
func (r *Repository) Load(ctx context.Context) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return task.Clone(r.tasks), nil
}

// Save replaces the stored sequence with a copy of tasks.
func (r *Repository) Save(ctx context.Context, tasks []task.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = task.Clone(tasks)
	r.saves++
	return nil
}

// Saves reports how many times Save has succeeded.
func (r *Repository) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}
