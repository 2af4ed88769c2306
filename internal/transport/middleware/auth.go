package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/roadworks-backend/internal/auth"
	"github.com/heartmarshall/roadworks-backend/internal/domain"
	"github.com/heartmarshall/roadworks-backend/pkg/ctxutil"
)

type sessionValidator interface {
	ValidateSession(token string) (*auth.Session, error)
}

// Auth resolves a bearer session token into the account email. Requests
// without a token pass through anonymously; an invalid token is rejected.
// Emails listed in admins are additionally marked as administrators.
func Auth(validator sessionValidator, admins []string) Middleware {
	adminSet := make(map[string]struct{}, len(admins))
	for _, a := range admins {
		if a = domain.NormalizeEmail(a); a != "" {
			adminSet[a] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := validator.ValidateSession(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			email := domain.NormalizeEmail(session.Email)
			ctx := ctxutil.WithEmail(r.Context(), email)
			if _, ok := adminSet[email]; ok {
				ctx = ctxutil.WithAdmin(ctx)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
