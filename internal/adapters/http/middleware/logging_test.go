package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/go-task-manager/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-task-manager/internal/platform/logging"
)

func TestLogging_AccessLineCarriesRouteAndTaskID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := taskRouter(middleware.Logging(testLogger(&buf)), func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"abc-123"}`))
	})

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/tasks/abc-123", http.NoBody))

	out := buf.String()
	assert.Contains(t, out, `msg="request completed"`)
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "route=/api/v1/tasks/{id}")
	assert.Contains(t, out, "task_id=abc-123")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "bytes=16")
	assert.Contains(t, out, "duration=")
}

func TestLogging_UnroutedRequestLogsPath(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/v1/tasks", http.NoBody))

	out := buf.String()
	assert.Contains(t, out, "path=/api/v1/tasks")
	assert.NotContains(t, out, "task_id=")
	assert.Contains(t, out, "status=204")
}

func TestLogging_LevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		level  string
	}{
		{status: http.StatusOK, level: "level=INFO"},
		{status: http.StatusNotFound, level: "level=WARN"},
		{status: http.StatusBadGateway, level: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := taskRouter(middleware.Logging(testLogger(&buf)), func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/tasks/7/toggle", http.NoBody))

			assert.Contains(t, buf.String(), tt.level+` msg="request completed"`)
		})
	}
}

func TestLogging_RequestLoggerInContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Chain(
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(testLogger(&buf)),
	)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info("toggling task")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", http.NoBody)
	req.Header.Set("X-Request-ID", "req-9")
	req.Header.Set("X-Correlation-ID", "corr-9")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `msg="toggling task" request_id=req-9 correlation_id=corr-9`)
}

func TestLogging_HeadersRedactedAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", http.NoBody)
	req.Header.Set("Authorization", "Bearer secret-token")
	req.Header.Set("Accept", "application/json")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `msg="request received"`)
	assert.Contains(t, out, "headers.Authorization=[REDACTED]")
	assert.Contains(t, out, "headers.Accept=application/json")
	assert.NotContains(t, out, "secret-token")
}
