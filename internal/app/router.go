package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/roadworks-backend/internal/config"
	"github.com/heartmarshall/roadworks-backend/internal/transport/middleware"
	"github.com/heartmarshall/roadworks-backend/internal/transport/rest"
)

const (
	rateLimitClients = 10_000
	rateLimitIdle    = 10 * time.Minute
)

// newRouter mounts every HTTP route behind the shared middleware stack.
// Logger sits inside Auth so access logs carry the account email.
func newRouter(cfg *config.Config, c *Container, logger *slog.Logger) http.Handler {
	var health *rest.HealthHandler
	if cfg.Cloud.Enabled() {
		health = rest.NewHealthHandler(c.Pool, c.Probe, BuildVersion())
	} else {
		health = rest.NewHealthHandler(c.Pool, nil, BuildVersion())
	}

	var admin *rest.AdminHandler
	if c.Sync != nil {
		admin = rest.NewAdminHandler(c.Lockout, c.Sync, logger)
	} else {
		admin = rest.NewAdminHandler(c.Lockout, nil, logger)
	}

	authH := rest.NewAuthHandler(c.Auth, logger)
	reports := rest.NewReportHandler(c.Reports, logger)

	limited := middleware.NewRateLimiter(rateLimitClients, rateLimitIdle).Limit(cfg.Server.LoginRateLimit)
	session := middleware.RequireSession()
	adminOnly := middleware.RequireAdmin()

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.Handle("POST /auth/login", limited.Then(authH.Login))
	mux.Handle("POST /auth/register", limited.Then(authH.Register))
	mux.Handle("POST /auth/password", session.Then(authH.ChangePassword))

	mux.HandleFunc("GET /reports", reports.List)
	mux.HandleFunc("GET /reports/{id}", reports.Get)
	mux.HandleFunc("GET /reports/{id}/history", reports.History)
	mux.HandleFunc("GET /reports/{id}/photos", reports.Photos)
	mux.HandleFunc("GET /reports/{id}/tooltip", reports.Tooltip)
	mux.Handle("POST /reports", session.Then(reports.Create))
	mux.Handle("PATCH /reports/{id}", adminOnly.Then(reports.Update))
	mux.Handle("DELETE /reports/{id}", adminOnly.Then(reports.Delete))
	mux.HandleFunc("GET /stats/summary", reports.Summary)
	mux.HandleFunc("GET /stats/delays", reports.Delays)

	mux.Handle("GET /admin/accounts/blocked", adminOnly.Then(admin.ListBlocked))
	mux.Handle("POST /admin/accounts/{id}/unlock", adminOnly.Then(admin.Unlock))
	mux.Handle("GET /admin/lockout-policy", adminOnly.Then(admin.GetPolicy))
	mux.Handle("PUT /admin/lockout-policy", adminOnly.Then(admin.SetPolicy))
	mux.Handle("POST /admin/sync", adminOnly.Then(admin.Sync))

	stack := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Auth(c.Sessions, cfg.Auth.AdminEmails),
		middleware.Logger(logger),
	)
	return stack(mux)
}
