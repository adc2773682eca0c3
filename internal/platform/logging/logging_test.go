package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-task-manager/internal/platform/logging"
)

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"level":"INFO"`},
		{format: "text", want: "level=INFO"},
		{format: "xml", want: `"level":"INFO"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("task added")

			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "task added")
		})
	}
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    string
		log      func(*slog.Logger)
		wantLine bool
	}{
		{level: "debug", log: func(l *slog.Logger) { l.Debug("d") }, wantLine: true},
		{level: "DEBUG", log: func(l *slog.Logger) { l.Debug("d") }, wantLine: true},
		{level: "info", log: func(l *slog.Logger) { l.Debug("d") }, wantLine: false},
		{level: "warn", log: func(l *slog.Logger) { l.Info("i") }, wantLine: false},
		{level: "error", log: func(l *slog.Logger) { l.Warn("w") }, wantLine: false},
		{level: "verbose", log: func(l *slog.Logger) { l.Debug("d") }, wantLine: false},
		{level: "verbose", log: func(l *slog.Logger) { l.Info("i") }, wantLine: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(logging.New(tt.level, "json", &buf))
			assert.Equal(t, tt.wantLine, buf.Len() > 0, "output %q", buf.String())
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", "json", &debugBuf).Info("x")
	logging.New("info", "json", &infoBuf).Info("x")

	assert.Contains(t, debugBuf.String(), `"source"`)
	assert.NotContains(t, infoBuf.String(), `"source"`)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "Info", want: slog.LevelInfo},
		{in: "WARN", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "", wantErr: true},
		{in: "verbose", wantErr: true},
		{in: "info+2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := logging.ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown log level")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Same(t, slog.Default(), logging.FromContext(context.Background()))

	first := logging.New("info", "json", &bytes.Buffer{})
	second := logging.New("debug", "json", &bytes.Buffer{})
	ctx := logging.WithLogger(context.Background(), first)
	assert.Same(t, first, logging.FromContext(ctx))

	ctx = logging.WithLogger(ctx, second)
	assert.Same(t, second, logging.FromContext(ctx))
}

func TestTaskAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "text", &buf).Warn("failed to toggle task",
		logging.Operation("ToggleTaskCompletion"),
		logging.TaskID("t-7"),
	)

	assert.Contains(t, buf.String(), "operation=ToggleTaskCompletion task_id=t-7")
}
