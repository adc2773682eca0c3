// Package middleware provides the inbound request pipeline of the task API.
//
// Stack assembles it in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// The pipeline is mounted with chi's Use, so the middleware that run after
// the handler (span naming, access log, panic report) see the matched route
// pattern, e.g. /api/v1/tasks/{id}, and the task id it captured.
package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/jsamuelsen11/go-task-manager/internal/platform/telemetry"
)

// Middleware wraps an http.Handler.
type Middleware = func(http.Handler) http.Handler

// Chain composes mws into one Middleware. The first argument sees the
// request first and the response last.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			h = mw(h)
		}
		return h
	}
}

// Stack returns the standard pipeline for the task API. metrics may be nil.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) Middleware {
	return Chain(
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(timeout),
	)
}
