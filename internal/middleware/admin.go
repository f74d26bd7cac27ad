package middleware

import (
	"crypto/subtle"
	"net/http"

	"agency-backend/internal/auth"
	"agency-backend/internal/transport"
)

// AdminAuth accepts either the static X-Admin-Key header or a valid admin
// access cookie issued by the login endpoint.
func AdminAuth(adminKey string, manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" && manager == nil {
				transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
				return
			}

			if adminKey != "" {
				if key := r.Header.Get("X-Admin-Key"); key != "" && subtle.ConstantTimeCompare([]byte(key), []byte(adminKey)) == 1 {
					next.ServeHTTP(w, r)
					return
				}
			}

			if manager != nil {
				cookie, err := r.Cookie(auth.AccessCookieName)
				if err == nil && cookie.Value != "" {
					claims, err := manager.Parse(cookie.Value)
					if err == nil && claims.Role == auth.RoleAdmin {
						next.ServeHTTP(w, r)
						return
					}
				}
			}

			transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		})
	}
}
