package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"agency-backend/internal/transport"
)

const panicFallbackMessage = "An unexpected error occurred"

// Recover turns a panic in any downstream handler into a JSON 500 response.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
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

				message := panicMessage(rec)
				log.Error("panic recovered",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", RequestIDFromContext(r.Context())),
					slog.String("error", message),
					slog.String("stack", string(debug.Stack())),
				)
				transport.WriteMessage(w, http.StatusInternalServerError, "Internal server error", message)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func panicMessage(rec interface{}) string {
	var msg string
	switch v := rec.(type) {
	case error:
		msg = v.Error()
	case string:
		msg = v
	case fmt.Stringer:
		msg = v.String()
	}
	if msg == "" {
		return panicFallbackMessage
	}
	return msg
}
