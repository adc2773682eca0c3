// Package logging builds the task manager's slog loggers and carries the
// request-scoped logger through a context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).InfoContext(ctx, "toggling task", logging.TaskID(id))
//
// Failures are logged with the operation, the task id when there is one, and
// the full error chain:
//
//	logger.WarnContext(ctx, "failed to toggle task",
//	    logging.Operation("ToggleTaskCompletion"),
//	    logging.TaskID(id),
//	    slog.Any("error", err),
//	)
//
// The HTTP access log uses the same task_id key, so one task's service and
// request lines can be found together.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error, case-insensitive, and falls back to info when unrecognized. format
// "text" selects slog's text handler; anything else gets JSON. Debug loggers
// include the source location. Every handler redacts credentials.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel reads one of the four named levels. Offsets such as "info+2",
// which slog itself would accept, are rejected.
func ParseLevel(level string) (slog.Level, error) {
	var lvl slog.Level
	if strings.ContainsAny(level, "+-") {
		return lvl, fmt.Errorf("unknown log level %q", level)
	}
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return lvl, fmt.Errorf("unknown log level %q", level)
	}
	return lvl, nil
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// TaskID tags a line with the task it concerns.
func TaskID(id string) slog.Attr {
	return slog.String("task_id", id)
}

// Operation names the service operation a line belongs to.
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}
