package api

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
)

type contextKey string

const adminContextKey contextKey = "admin"

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "", false
	}
	return auth[len(prefix):], true
}

// BearerAuth rejects requests without a valid bearer token. An empty
// configured token means the surface is disabled entirely.
func BearerAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := bearerToken(r)
			if token == "" || !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				httpError(w, http.StatusUnauthorized, "authentication_error", "invalid or missing bearer token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminDetector marks the request as admin when a valid bearer token is
// presented, but never rejects. Used on routes that behave differently for
// admins while staying open to visitors.
func AdminDetector(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token != "" {
				if got, ok := bearerToken(r); ok && subtle.ConstantTimeCompare([]byte(got), []byte(token)) == 1 {
					r = r.WithContext(context.WithValue(r.Context(), adminContextKey, true))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isAdmin(r *http.Request) bool {
	v, _ := r.Context().Value(adminContextKey).(bool)
	return v
}
