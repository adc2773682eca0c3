package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-task-manager/internal/app/store"
	"github.com/jsamuelsen11/go-task-manager/internal/domain"
	"github.com/jsamuelsen11/go-task-manager/internal/domain/task"
	"github.com/jsamuelsen11/go-task-manager/internal/platform/logging"
	"github.com/jsamuelsen11/go-task-manager/internal/ports"
)

// Compile-time check that Persister implements ports.HealthChecker.
var _ ports.HealthChecker = (*Persister)(nil)

// DefaultSaveTimeout bounds a single repository save.
const DefaultSaveTimeout = 5 * time.Second

// Persister writes every store snapshot to a TaskRepository. A failed save is
// logged and remembered for the readiness check; the in-memory change stands.
type Persister struct {
	repo    ports.TaskRepository
	timeout time.Duration
	logger  *slog.Logger

	mu      sync.Mutex
	lastErr error
}

// NewPersister creates a Persister. A non-positive timeout selects
// DefaultSaveTimeout and a nil logger discards output.
func NewPersister(repo ports.TaskRepository, timeout time.Duration, logger *slog.Logger) *Persister {
	if timeout <= 0 {
		timeout = DefaultSaveTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Persister{
		repo:    repo,
		timeout: timeout,
		logger:  logger,
	}
}

// Attach subscribes the Persister to s and returns the unsubscribe function.
func (p *Persister) Attach(s *store.Store) func() {
	return s.Subscribe(p.Save)
}

// Save writes snapshot to the repository. It has the store.Subscriber shape.
func (p *Persister) Save(snapshot []task.Task) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	err := p.repo.Save(ctx, snapshot)

	p.mu.Lock()
	p.lastErr = err
	p.mu.Unlock()

	if err != nil {
		p.logger.ErrorContext(ctx, "failed to persist tasks",
			logging.Operation("Save"),
			slog.Int("count", len(snapshot)),
			slog.Any("error", err),
		)
	}
}

// Name implements ports.HealthChecker.
func (p *Persister) Name() string {
	return "persistence"
}

// HealthCheck reports the outcome of the most recent save.
func (p *Persister) HealthCheck(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.lastErr != nil {
		return fmt.Errorf("%w: last save failed: %w", domain.ErrUnavailable, p.lastErr)
	}
	return nil
}
