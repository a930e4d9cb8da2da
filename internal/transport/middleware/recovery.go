package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/insurance-crm/pkg/ctxutil"
)

// panicBody is the record API's internal-failure envelope, so clients see the
// same shape whether a request failed in the store or in a handler.
const panicBody = `{"code":"STORE_FAILURE","message":"internal error"}`

// Recovery turns a handler panic into a 500 with the API error envelope and
// logs it with the stack and request identifiers. http.ErrAbortHandler is
// re-raised so the server aborts the connection as usual.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				attrs := []slog.Attr{
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				}
				if principal, ok := ctxutil.PrincipalFromCtx(r.Context()); ok {
					attrs = append(attrs, slog.String("principal", principal))
				}
				logger.LogAttrs(r.Context(), slog.LevelError, "handler panic", attrs...)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(panicBody))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
