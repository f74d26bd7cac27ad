package middleware

import (
	"crypto/subtle"
	"net/http"
	"regexp"
	"strings"

	"agency-backend/internal/transport"
)

var bearerPrefix = regexp.MustCompile(`(?i)^bearer\s+`)

// BearerToken returns the Authorization header value with a case-insensitive
// "Bearer " prefix removed.
func BearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	return strings.TrimSpace(bearerPrefix.ReplaceAllString(header, ""))
}

// BearerAuth compares the bearer token against the shared secret returned by
// secret. An empty secret rejects every request.
func BearerAuth(secret func() string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			expected := secret()
			token := BearerToken(r)
			if expected == "" || token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
				transport.WriteMessage(w, http.StatusUnauthorized, "Unauthorized", "Invalid or missing API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
