package ctxutil

import (
	"context"
	"strings"
)

type ctxKey string

const (
	emailKey     ctxKey = "email"
	adminKey     ctxKey = "admin"
	requestIDKey ctxKey = "request_id"
)

// WithEmail stores the authenticated account email in the context.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// EmailFromCtx extracts the authenticated account email from the context.
// Returns "" and false if the value is missing, blank, or of the wrong type.
func EmailFromCtx(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	if !ok || strings.TrimSpace(email) == "" {
		return "", false
	}
	return email, true
}

// WithAdmin marks the request as issued by an administrator.
func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminKey, true)
}

// IsAdminCtx reports whether WithAdmin was applied to the context.
func IsAdminCtx(ctx context.Context) bool {
	admin, _ := ctx.Value(adminKey).(bool)
	return admin
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
