package middleware

import (
	"net/http"
	"strings"

	"nomina/internal/auth"
	"nomina/internal/transport/http/api"
)

// RequireAuth validates a bearer token on every request. With an empty
// secret the API runs open, which is the development default.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "bearer token required", GetRequestID(r.Context()))
				return
			}

			if _, err := auth.ParseToken(secret, parts[1]); err != nil {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid token", GetRequestID(r.Context()))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
