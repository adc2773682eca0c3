// Package mysql stores the task sequence in a MySQL table. Each row carries
// its position so Load returns tasks in the order they were saved.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/jsamuelsen11/go-task-manager/internal/domain"
	"github.com/jsamuelsen11/go-task-manager/internal/domain/task"
	"github.com/jsamuelsen11/go-task-manager/internal/platform/config"
	"github.com/jsamuelsen11/go-task-manager/internal/ports"
)

var (
	_ ports.TaskRepository = (*Repository)(nil)
	_ ports.HealthChecker  = (*Repository)(nil)
)

const (
	// insertBatchSize keeps a single INSERT well under the placeholder limit.
	insertBatchSize = 500
	columnsPerRow   = 5

	errNoSuchTable = 1146
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// Repository is a MySQL-backed task repository.
type Repository struct {
	db    *sql.DB
	table string
}

// Open connects using cfg, verifies the connection, and creates the table
// when it does not exist.
func Open(ctx context.Context, cfg config.MySQLConfig) (*Repository, error) {
	dsn, err := mysql.ParseDSN(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing mysql dsn: %w", err)
	}
	dsn.ParseTime = true

	connector, err := mysql.NewConnector(dsn)
	if err != nil {
		return nil, fmt.Errorf("creating mysql connector: %w", err)
	}
	db := sql.OpenDB(connector)
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: connecting to mysql at %s: %w", domain.ErrUnavailable, dsn.Addr, err)
	}

	repo, err := New(db, cfg.Table)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := repo.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// New wraps an open database handle. table must be a plain identifier.
func New(db *sql.DB, table string) (*Repository, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, &domain.ValidationError{Fields: map[string]string{"table": fmt.Sprintf("invalid name %q", table)}}
	}
	return &Repository{db: db, table: table}, nil
}

// Migrate creates the task table if it is missing and brings the id column
// of an existing table to the current definition. Ids use a binary collation
// because task ids are case-sensitive.
func (r *Repository) Migrate(ctx context.Context) error {
	idColumn := fmt.Sprintf("id VARCHAR(%d) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL", task.MaxIDLength)

	create := fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` ("+
		"position INT NOT NULL, "+
		"%s PRIMARY KEY, "+
		"title VARCHAR(%d) NOT NULL, "+
		"priority VARCHAR(10) NOT NULL, "+
		"completed BOOLEAN NOT NULL DEFAULT FALSE, "+
		"KEY idx_position (position)"+
		") DEFAULT CHARSET=utf8mb4", r.table, idColumn, task.MaxTitleLength)
	if _, err := r.db.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("creating table %s: %w", r.table, err)
	}

	alter := fmt.Sprintf("ALTER TABLE `%s` MODIFY %s", r.table, idColumn)
	if _, err := r.db.ExecContext(ctx, alter); err != nil {
		return fmt.Errorf("migrating id column of %s: %w", r.table, err)
	}
	return nil
}

// Load returns every stored task in saved order. A missing table is an empty
// sequence.
func (r *Repository) Load(ctx context.Context) ([]task.Task, error) {
	query := fmt.Sprintf("SELECT id, title, priority, completed FROM `%s` ORDER BY position", r.table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == errNoSuchTable {
			return []task.Task{}, nil
		}
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := []task.Task{}
	for rows.Next() {
		var (
			t        task.Task
			priority string
		)
		if err := rows.Scan(&t.ID, &t.Title, &priority, &t.Completed); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		t.Priority = task.Priority(priority)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// Save replaces the table contents with tasks in one transaction.
func (r *Repository) Save(ctx context.Context, tasks []task.Task) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM `%s`", r.table)); err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}

	for start := 0; start < len(tasks); start += insertBatchSize {
		end := min(start+insertBatchSize, len(tasks))
		query, args := r.insertBatch(tasks[start:end], start)
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting tasks %d-%d: %w", start, end-1, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing tasks: %w", err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string {
	return "mysql"
}

// HealthCheck pings the database.
func (r *Repository) HealthCheck(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// Close releases the connection pool.
func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) insertBatch(batch []task.Task, offset int) (string, []any) {
	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO `%s` (position, id, title, priority, completed) VALUES ", r.table)

	args := make([]any, 0, len(batch)*columnsPerRow)
	for i, t := range batch {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(?, ?, ?, ?, ?)")
		args = append(args, offset+i, t.ID, t.Title, string(t.Priority), t.Completed)
	}
	return b.String(), args
}
