package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
	"github.com/heartmarshall/roadworks-backend/internal/service/recordsync"
)

type lockoutAdmin interface {
	ListBlocked(ctx context.Context) ([]domain.Account, error)
	Unlock(ctx context.Context, accountID int64) (*domain.Account, error)
	MaxAttempts(ctx context.Context) int
	SetMaxAttempts(ctx context.Context, n int) error
}

type syncRunner interface {
	SyncAll(ctx context.Context) (recordsync.Report, recordsync.Report, error)
}

// AdminHandler serves the lockout administration and sync trigger endpoints.
// Mount it behind middleware.RequireAdmin.
type AdminHandler struct {
	lockout lockoutAdmin
	sync    syncRunner
	log     *slog.Logger
}

// NewAdminHandler creates an AdminHandler. sync may be nil when no cloud
// project is configured.
func NewAdminHandler(lockout lockoutAdmin, sync syncRunner, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		lockout: lockout,
		sync:    sync,
		log:     logger.With("handler", "admin"),
	}
}

type lockoutPolicy struct {
	MaxAttempts int `json:"maxAttempts"`
}

type syncReportResponse struct {
	RunID      string    `json:"runId"`
	Direction  string    `json:"direction"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Total      int       `json:"total"`
	Created    int       `json:"created"`
	Updated    int       `json:"updated"`
	Unchanged  int       `json:"unchanged"`
	Anomalies  int       `json:"anomalies"`
	Failed     int       `json:"failed"`
}

func toSyncReportResponse(rep recordsync.Report) syncReportResponse {
	return syncReportResponse{
		RunID:      rep.RunID.String(),
		Direction:  string(rep.Direction),
		StartedAt:  rep.StartedAt,
		FinishedAt: rep.FinishedAt,
		Total:      rep.Total,
		Created:    rep.Created,
		Updated:    rep.Updated,
		Unchanged:  rep.Unchanged,
		Anomalies:  rep.Anomalies,
		Failed:     rep.Failed,
	}
}

// ListBlocked handles GET /admin/accounts/blocked.
func (h *AdminHandler) ListBlocked(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.lockout.ListBlocked(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]accountResponse, 0, len(accounts))
	for i := range accounts {
		resp = append(resp, toAccountResponse(&accounts[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Unlock handles POST /admin/accounts/{id}/unlock.
func (h *AdminHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	acc, err := h.lockout.Unlock(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "account unlocked by admin", slog.Int64("account_id", id))
	writeJSON(w, http.StatusOK, toAccountResponse(acc))
}

// GetPolicy handles GET /admin/lockout-policy.
func (h *AdminHandler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, lockoutPolicy{MaxAttempts: h.lockout.MaxAttempts(r.Context())})
}

// SetPolicy handles PUT /admin/lockout-policy.
func (h *AdminHandler) SetPolicy(w http.ResponseWriter, r *http.Request) {
	var req lockoutPolicy
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.lockout.SetMaxAttempts(r.Context(), req.MaxAttempts); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, req)
}

// Sync handles POST /admin/sync: one pull pass then one push pass.
func (h *AdminHandler) Sync(w http.ResponseWriter, r *http.Request) {
	if h.sync == nil {
		writeError(w, http.StatusServiceUnavailable, "no cloud project configured")
		return
	}

	pull, push, err := h.sync.SyncAll(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, []syncReportResponse{toSyncReportResponse(pull), toSyncReportResponse(push)})
}
