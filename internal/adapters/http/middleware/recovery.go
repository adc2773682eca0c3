package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-task-manager/internal/adapters/http/dto"
)

// errPanic is what the client sees; the panic value and stack only go to
// the log.
var errPanic = errors.New("internal server error")

// Recovery turns a handler panic into a 500 problem response and an ERROR
// log line with the stack, the route, and the task id being handled. When
// the handler had already started its response, only the log line is
// written. http.ErrAbortHandler is re-raised so the server can abort the
// connection.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := wrapWriter(w, r)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				attrs := append(routeAttrs(r),
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
				)
				logger.ErrorContext(r.Context(), "panic recovered", attrs...)

				if ww.Status() == 0 {
					dto.WriteErrorResponse(ww, r, errPanic)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
