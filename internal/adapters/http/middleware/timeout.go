package middleware

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-task-manager/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-task-manager/internal/platform/logging"
)

// Timeout bounds how long a handler may take. The handler runs on its own
// goroutine with a context carrying the deadline and writes into a buffer.
// If it finishes in time the buffer is sent; otherwise the client gets a 504
// problem response and anything the handler writes later is dropped. A
// panic in the handler is re-raised on the serving goroutine so Recovery can
// report it.
func Timeout(limit time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()
			r = r.WithContext(ctx)

			buf := &bufferedResponse{header: make(http.Header)}
			done := make(chan struct{})
			var panicked any

			go func() {
				defer close(done)
				defer func() { panicked = recover() }()
				next.ServeHTTP(buf, r)
			}()

			select {
			case <-done:
				if panicked != nil {
					panic(panicked)
				}
				buf.sendTo(w)
			case <-ctx.Done():
				// The handler may still be routing, so the raw path is logged
				// rather than the route pattern.
				logging.FromContext(ctx).WarnContext(ctx, "request timed out",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Duration("limit", limit),
				)
				dto.WriteErrorResponse(w, r, fmt.Errorf("request did not finish within %s: %w", limit, context.DeadlineExceeded))
			}
		})
	}
}

// bufferedResponse collects what a handler writes. Only the handler
// goroutine touches it until done is closed.
type bufferedResponse struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(code int) {
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *bufferedResponse) sendTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	_, _ = b.body.WriteTo(w)
}
