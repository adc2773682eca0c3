package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/go-task-manager/internal/adapters/http/middleware"
)

func TestChain_RunsInListedOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) middleware.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := middleware.Chain(mark("outer"), mark("middle"), mark("inner"))(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { order = append(order, "handler") }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, []string{"outer", "middle", "inner", "handler"}, order)
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	h := middleware.Chain()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestStack_EndToEnd(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Stack(testLogger(&buf), nil, time.Second))
	r.Get("/api/v1/tasks/{id}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"t-9"}`))
	})
	r.Delete("/api/v1/tasks/{id}", func(http.ResponseWriter, *http.Request) {
		panic("delete exploded")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/t-9", http.NoBody)
	req.Header.Set("X-Request-ID", "req-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-1", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "req-1", rec.Header().Get("X-Correlation-ID"))
	assert.Contains(t, buf.String(), "task_id=t-9")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/t-9", http.NoBody))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), `msg="panic recovered"`)
}
