// Package cache wraps a task repository with a short-lived copy of the
// sequence it last read or wrote.
//
// Load is served from the copy while it is fresh. Save skips the write when
// the snapshot equals the fresh copy, so changes that leave the sequence as
// it was (completing tasks that are already complete, clearing completed
// tasks when there are none) never reach a remote or SQL backend. Readiness
// checks read through the copy, so checking more often than the TTL costs
// the backend nothing. Once the copy expires the next Save is written even if
// nothing changed, which repairs a backend changed behind this process.
package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/jsamuelsen11/go-task-manager/internal/domain/task"
	"github.com/jsamuelsen11/go-task-manager/internal/ports"
)

var (
	_ ports.TaskRepository = (*Repository)(nil)
	_ ports.HealthChecker  = (*Repository)(nil)
)

// DefaultTTL is how long a loaded or saved sequence stays fresh.
const DefaultTTL = 5 * time.Minute

// sequenceKey is the only entry; a repository holds one sequence.
const sequenceKey = "tasks"

// Repository is a caching ports.TaskRepository decorator.
type Repository struct {
	next ports.TaskRepository

	// mu makes check-then-write on fresh atomic.
	mu    sync.Mutex
	fresh *expirable.LRU[string, []task.Task]
}

// New wraps next. A non-positive ttl selects DefaultTTL.
func New(next ports.TaskRepository, ttl time.Duration) *Repository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Repository{
		next:  next,
		fresh: expirable.NewLRU[string, []task.Task](1, nil, ttl),
	}
}

// Load returns the fresh copy when there is one and otherwise loads from the
// wrapped repository. Load errors are not cached.
func (r *Repository) Load(ctx context.Context) ([]task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tasks, ok := r.fresh.Get(sequenceKey); ok {
		return task.Clone(tasks), nil
	}

	tasks, err := r.next.Load(ctx)
	if err != nil {
		return nil, err
	}
	r.fresh.Add(sequenceKey, task.Clone(tasks))
	return task.Clone(tasks), nil
}

// Save writes tasks through unless they equal the fresh copy. A failed write
// drops the copy so the next Save and Load go to the wrapped repository.
func (r *Repository) Save(ctx context.Context, tasks []task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.fresh.Get(sequenceKey); ok && slices.Equal(current, tasks) {
		return nil
	}

	if err := r.next.Save(ctx, tasks); err != nil {
		r.fresh.Remove(sequenceKey)
		return err
	}
	r.fresh.Add(sequenceKey, task.Clone(tasks))
	return nil
}

// Name reports the wrapped repository's name when it has one.
func (r *Repository) Name() string {
	if hc, ok := r.next.(ports.HealthChecker); ok {
		return hc.Name()
	}
	return "cache"
}

// HealthCheck runs the wrapped repository's own check, when it has one, and
// then reads the sequence through the cache.
func (r *Repository) HealthCheck(ctx context.Context) error {
	if hc, ok := r.next.(ports.HealthChecker); ok {
		if err := hc.HealthCheck(ctx); err != nil {
			return err
		}
	}
	_, err := r.Load(ctx)
	return err
}
