package middleware

import (
	"net/http"
	"strings"

	"agency-backend/internal/transport"
)

// AllowMethods rejects any request whose method is not listed with a JSON 405.
// Mount it ahead of authentication so the method check wins.
func AllowMethods(methods ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		allowed[strings.ToUpper(m)] = struct{}{}
	}
	allowHeader := strings.Join(methods, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := allowed[r.Method]; !ok {
				w.Header().Set("Allow", allowHeader)
				transport.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
