package middleware

import (
	"net/http"

	"github.com/heartmarshall/roadworks-backend/pkg/ctxutil"
)

// RequireSession rejects anonymous requests with 401.
func RequireSession() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.EmailFromCtx(r.Context()); !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin rejects anonymous requests with 401 and non-admin sessions
// with 403.
func RequireAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return RequireSession()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !ctxutil.IsAdminCtx(r.Context()) {
				http.Error(w, "admin access required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
