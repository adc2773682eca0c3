package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-task-manager/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-manager/internal/adapters/http/middleware"
)

func TestTimeout_FinishesInTime(t *testing.T) {
	t.Parallel()

	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline := r.Context().Deadline()
		assert.True(t, hasDeadline)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"t-1"}`))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/tasks", http.NoBody))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"t-1"}`, rec.Body.String())
}

func TestTimeout_ImplicitOK(t *testing.T) {
	t.Parallel()

	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tasks", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestTimeout_SlowHandlerGetsProblemResponse(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	h := middleware.Timeout(20*time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
		// Written after the deadline; the client must not see it.
		_, _ = w.Write([]byte("late"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tasks/stats", http.NoBody))

	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Gateway Timeout", resp.Title)
	assert.Contains(t, resp.Detail, "did not finish within 20ms")
	assert.Equal(t, "/api/v1/tasks/stats", resp.Instance)
}

func TestTimeout_PanicReraised(t *testing.T) {
	t.Parallel()

	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("bad sort key")
	}))

	assert.PanicsWithValue(t, "bad sort key", func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/tasks", http.NoBody))
	})
}

func TestTimeout_PanicReachesRecovery(t *testing.T) {
	t.Parallel()

	h := middleware.Chain(
		middleware.Recovery(discardLogger()),
		middleware.Timeout(time.Second),
	)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("bad sort key")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tasks", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
