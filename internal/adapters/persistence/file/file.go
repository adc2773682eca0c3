// Package file stores the task sequence as a pretty-printed JSON array in a
// single file. Writes go to a temporary file in the same directory and are
// renamed into place, so a reader never sees a partial document.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jsamuelsen11/go-task-manager/internal/domain"
	"github.com/jsamuelsen11/go-task-manager/internal/domain/task"
	"github.com/jsamuelsen11/go-task-manager/internal/ports"
)

var (
	_ ports.TaskRepository = (*Repository)(nil)
	_ ports.HealthChecker  = (*Repository)(nil)
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Repository is a JSON file task repository.
type Repository struct {
	mu   sync.Mutex
	path string
}

// New creates a Repository writing to path, creating the parent directory
// when it is missing. The file itself is created on the first Save.
func New(path string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("creating data directory for %s: %w", path, err)
	}
	return &Repository{path: path}, nil
}

// Path returns the file the repository writes to.
func (r *Repository) Path() string {
	return r.path
}

// Load reads the stored sequence. A missing or empty file is an empty
// sequence.
func (r *Repository) Load(ctx context.Context) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && len(b) == 0) {
		return []task.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.path, err)
	}

	tasks := []task.Task{}
	if err := json.Unmarshal(b, &tasks); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", r.path, err)
	}
	return tasks, nil
}

// Save replaces the file contents with tasks.
func (r *Repository) Save(ctx context.Context, tasks []task.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if tasks == nil {
		tasks = []task.Task{}
	}
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return writeAtomic(r.path, b)
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string {
	return "file"
}

// HealthCheck verifies the data directory is still a reachable directory.
func (r *Repository) HealthCheck(_ context.Context) error {
	dir := filepath.Dir(r.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", domain.ErrUnavailable, dir)
	}
	return nil
}

func writeAtomic(path string, b []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("setting mode on %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
