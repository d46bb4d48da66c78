// Package recovery provides the catch-all error middleware for the API.
//
// Any panic escaping a handler is logged and converted into the uniform
// failure envelope so every request terminates with exactly one JSON
// response. The stack trace is included in the body only outside production.
package recovery

import (
	"net/http"
	"runtime/debug"

	"github.com/inkpost/inkpost/internal/app/system/jsonutil"
	"go.uber.org/zap"
)

// Middleware returns the panic recovery middleware. When exposeStack is true
// the response carries the stack trace alongside the error message.
func Middleware(logger *zap.Logger, exposeStack bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := debug.Stack()
				logger.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
					zap.ByteString("stack", stack),
				)

				body := map[string]any{
					"success": false,
					"error":   "internal server error",
				}
				if exposeStack {
					body["stack"] = string(stack)
				}
				jsonutil.JSON(w, http.StatusInternalServerError, body)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
