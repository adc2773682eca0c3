package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jsamuelsen11/go-task-manager/internal/adapters/persistence"
	"github.com/jsamuelsen11/go-task-manager/internal/app"
	"github.com/jsamuelsen11/go-task-manager/internal/platform/config"
	"github.com/jsamuelsen11/go-task-manager/internal/platform/logging"
	"github.com/jsamuelsen11/go-task-manager/internal/ports"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	profile   string
	configDir string
	driver    string
	file      string
	logLevel  string
	json      bool
}

// session is one command's view of the task list. Close reports a failed
// save, since the command otherwise looks successful.
type session struct {
	svc   ports.TaskService
	close func() error
}

// opener builds a session. Tests swap in one backed by memory.
type opener func(ctx context.Context, opts *globalOptions, stderr io.Writer) (*session, error)

func openSession(ctx context.Context, opts *globalOptions, stderr io.Writer) (*session, error) {
	cfg, err := config.Load(opts.profile, config.WithConfigDir(opts.configDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.driver != "" {
		cfg.Persistence.Driver = opts.driver
	}
	if opts.file != "" {
		cfg.Persistence.File.Path = opts.file
	}

	logger := logging.New(opts.logLevel, "text", stderr)

	backend, err := persistence.Open(ctx, cfg, nil, logger)
	if err != nil {
		return nil, err
	}

	s, err := app.LoadStore(ctx, backend.Repo, logger)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	persister := app.NewPersister(backend.Repo, cfg.Persistence.SaveTimeout, logger)
	detach := persister.Attach(s)

	return &session{
		svc: app.NewTaskService(s, nil, logger),
		close: func() error {
			detach()
			return errors.Join(persister.HealthCheck(ctx), backend.Close())
		},
	}, nil
}
