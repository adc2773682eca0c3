package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-task-manager/internal/adapters/clients/remote"
	"github.com/jsamuelsen11/go-task-manager/internal/adapters/persistence/cache"
	"github.com/jsamuelsen11/go-task-manager/internal/adapters/persistence/file"
	"github.com/jsamuelsen11/go-task-manager/internal/adapters/persistence/memory"
	"github.com/jsamuelsen11/go-task-manager/internal/adapters/persistence/mysql"
	"github.com/jsamuelsen11/go-task-manager/internal/platform/config"
	"github.com/jsamuelsen11/go-task-manager/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-task-manager/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-task-manager/internal/ports"
)

// remoteServiceName identifies the remote task server in logs, traces, and
// the readiness report.
const remoteServiceName = "remote-store"

var errUnknownDriver = errors.New("unknown persistence driver")

// Backend is an opened repository together with what the caller must
// register and release.
type Backend struct {
	Repo ports.TaskRepository

	// Checker is nil when the repository has nothing to report.
	Checker ports.HealthChecker

	// Close releases connections. It is never nil.
	Close func() error
}

// Open builds the repository selected by cfg.Persistence.Driver and wraps it
// in the read cache when cfg.Persistence.CacheTTL is positive. metrics may be
// nil.
func Open(ctx context.Context, cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (*Backend, error) {
	b, err := openDriver(ctx, cfg, metrics, logger)
	if err != nil {
		return nil, err
	}

	if ttl := cfg.Persistence.CacheTTL; ttl > 0 {
		cached := cache.New(b.Repo, ttl)
		b.Repo = cached
		if b.Checker != nil {
			b.Checker = cached
		}
	}

	logger.Info("persistence ready",
		slog.String("driver", cfg.Persistence.Driver),
		slog.Duration("cache_ttl", cfg.Persistence.CacheTTL),
	)
	return b, nil
}

func openDriver(ctx context.Context, cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (*Backend, error) {
	noClose := func() error { return nil }

	switch driver := cfg.Persistence.Driver; driver {
	case config.DriverMemory:
		return &Backend{Repo: memory.New(nil), Close: noClose}, nil

	case config.DriverFile:
		repo, err := file.New(cfg.Persistence.File.Path)
		if err != nil {
			return nil, fmt.Errorf("opening file repository: %w", err)
		}
		return &Backend{Repo: repo, Checker: repo, Close: noClose}, nil

	case config.DriverMySQL:
		repo, err := mysql.Open(ctx, cfg.Persistence.MySQL)
		if err != nil {
			return nil, fmt.Errorf("opening mysql repository: %w", err)
		}
		return &Backend{Repo: repo, Checker: repo, Close: repo.Close}, nil

	case config.DriverRemote:
		client := httpclient.New(&cfg.Client, remoteServiceName, metrics, logger)
		repo := remote.New(client, logger)
		return &Backend{Repo: repo, Checker: repo, Close: noClose}, nil

	default:
		return nil, fmt.Errorf("%w: %q", errUnknownDriver, driver)
	}
}
