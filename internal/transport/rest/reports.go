package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
	"github.com/heartmarshall/roadworks-backend/internal/service/report"
)

type reportService interface {
	Create(ctx context.Context, input report.CreateInput) (*domain.Record, error)
	Get(ctx context.Context, id int64) (*domain.Record, error)
	List(ctx context.Context, input report.ListInput) ([]domain.Record, error)
	Update(ctx context.Context, input report.UpdateInput) (*domain.Record, error)
	Delete(ctx context.Context, id int64) error
	History(ctx context.Context, id int64) ([]domain.Advancement, error)
	Summary(ctx context.Context) (domain.RecordTotals, error)
	CompletionDelays(ctx context.Context) (*report.CompletionDelays, error)
	Photos(ctx context.Context, id int64) ([]domain.Photo, error)
	Tooltip(ctx context.Context, id int64) (*report.Tooltip, error)
}

// ReportHandler serves road-work report and statistics endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

type recordResponse struct {
	ID           int64     `json:"id"`
	ExternalID   string    `json:"externalId,omitempty"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Description  string    `json:"description"`
	Surface      float64   `json:"surface"`
	PricePerUnit float64   `json:"pricePerUnit"`
	Level        int       `json:"level"`
	Budget       float64   `json:"budget"`
	Company      string    `json:"company"`
	Status       string    `json:"status"`
	Progress     int       `json:"progress"`
	ReportedAt   time.Time `json:"reportedAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toRecordResponse(rec *domain.Record) recordResponse {
	return recordResponse{
		ID:           rec.ID,
		ExternalID:   rec.ExternalID,
		Latitude:     rec.Location.Latitude,
		Longitude:    rec.Location.Longitude,
		Description:  rec.Description,
		Surface:      rec.Surface,
		PricePerUnit: rec.PricePerUnit,
		Level:        rec.Level,
		Budget:       rec.Budget,
		Company:      rec.Company,
		Status:       rec.Status.String(),
		Progress:     rec.Status.Progress(),
		ReportedAt:   rec.ReportedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

type createReportRequest struct {
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Description  string    `json:"description"`
	Surface      float64   `json:"surface"`
	PricePerUnit float64   `json:"pricePerUnit"`
	Level        int       `json:"level"`
	Company      string    `json:"company"`
	ReportedAt   time.Time `json:"reportedAt"`
}

type updateReportRequest struct {
	Status       *string    `json:"status"`
	Description  *string    `json:"description"`
	Surface      *float64   `json:"surface"`
	PricePerUnit *float64   `json:"pricePerUnit"`
	Level        *int       `json:"level"`
	Company      *string    `json:"company"`
	Budget       *float64   `json:"budget"`
	ModifiedAt   *time.Time `json:"modifiedAt"`
}

type advancementResponse struct {
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	ChangedAt      time.Time `json:"changedAt"`
}

type photoResponse struct {
	ID      string    `json:"id"`
	URL     string    `json:"url"`
	AddedAt time.Time `json:"addedAt"`
}

type tooltipResponse struct {
	ID         int64           `json:"id"`
	ReportedAt time.Time       `json:"reportedAt"`
	Status     string          `json:"status"`
	Surface    float64         `json:"surface"`
	Budget     float64         `json:"budget"`
	Company    string          `json:"company"`
	Photos     []photoResponse `json:"photos"`
}

func toPhotoResponses(photos []domain.Photo) []photoResponse {
	out := make([]photoResponse, 0, len(photos))
	for _, p := range photos {
		out = append(out, photoResponse{ID: p.ID, URL: p.URL, AddedAt: p.AddedAt})
	}
	return out
}

type summaryResponse struct {
	Count             int     `json:"count"`
	TotalSurface      float64 `json:"totalSurface"`
	TotalBudget       float64 `json:"totalBudget"`
	CompletionPercent float64 `json:"completionPercent"`
}

type delayResponse struct {
	Company      string  `json:"company,omitempty"`
	Count        int     `json:"count"`
	AverageHours float64 `json:"averageHours"`
	MinHours     float64 `json:"minHours"`
	MaxHours     float64 `json:"maxHours"`
}

type delaysResponse struct {
	Overall   delayResponse   `json:"overall"`
	ByCompany []delayResponse `json:"byCompany"`
}

func toDelayResponse(company string, d report.DelayStats) delayResponse {
	return delayResponse{
		Company:      company,
		Count:        d.Count,
		AverageHours: d.AverageHours,
		MinHours:     d.MinHours,
		MaxHours:     d.MaxHours,
	}
}

// parseStatusParam resolves a status label. ok is false for an unknown label.
func parseStatusParam(label string) (*domain.StatusID, bool) {
	if label == "" {
		return nil, true
	}
	st, ok := domain.ParseStatus(label)
	if !ok {
		return nil, false
	}
	return &st, true
}

// List handles GET /reports?status=&company=&limit=&offset=.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	status, ok := parseStatusParam(q.Get("status"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown status")
		return
	}
	limit, okLimit := queryInt(r, "limit", 50)
	offset, okOffset := queryInt(r, "offset", 0)
	if !okLimit || !okOffset {
		writeError(w, http.StatusBadRequest, "limit and offset must be integers")
		return
	}

	records, err := h.svc.List(r.Context(), report.ListInput{
		Status:  status,
		Company: q.Get("company"),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]recordResponse, 0, len(records))
	for i := range records {
		resp = append(resp, toRecordResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /reports/{id}.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// Create handles POST /reports.
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.svc.Create(r.Context(), report.CreateInput{
		Location:     domain.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude},
		Description:  req.Description,
		Surface:      req.Surface,
		PricePerUnit: req.PricePerUnit,
		Level:        req.Level,
		Company:      req.Company,
		ReportedAt:   req.ReportedAt,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRecordResponse(rec))
}

// Update handles PATCH /reports/{id}.
func (h *ReportHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	var req updateReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := report.UpdateInput{
		ID:           id,
		Description:  req.Description,
		Surface:      req.Surface,
		PricePerUnit: req.PricePerUnit,
		Level:        req.Level,
		Company:      req.Company,
		Budget:       req.Budget,
		ModifiedAt:   req.ModifiedAt,
	}
	if req.Status != nil {
		st, ok := domain.ParseStatus(*req.Status)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown status")
			return
		}
		input.Status = &st
	}

	rec, err := h.svc.Update(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// Delete handles DELETE /reports/{id}.
func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /reports/{id}/history.
func (h *ReportHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	advs, err := h.svc.History(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]advancementResponse, 0, len(advs))
	for _, a := range advs {
		resp = append(resp, advancementResponse{
			PreviousStatus: a.PreviousStatus.String(),
			NewStatus:      a.NewStatus.String(),
			ChangedAt:      a.ChangedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Photos handles GET /reports/{id}/photos.
func (h *ReportHandler) Photos(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	photos, err := h.svc.Photos(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPhotoResponses(photos))
}

// Tooltip handles GET /reports/{id}/tooltip.
func (h *ReportHandler) Tooltip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid report id")
		return
	}

	tip, err := h.svc.Tooltip(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tooltipResponse{
		ID:         tip.Record.ID,
		ReportedAt: tip.Record.ReportedAt,
		Status:     tip.Record.Status.String(),
		Surface:    tip.Record.Surface,
		Budget:     tip.Record.Budget,
		Company:    tip.Record.Company,
		Photos:     toPhotoResponses(tip.Photos),
	})
}

// Summary handles GET /stats/summary.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Summary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		Count:             t.Count,
		TotalSurface:      t.TotalSurface,
		TotalBudget:       t.TotalBudget,
		CompletionPercent: t.CompletionPercent,
	})
}

// Delays handles GET /stats/delays.
func (h *ReportHandler) Delays(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.CompletionDelays(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := delaysResponse{
		Overall:   toDelayResponse("", d.Overall),
		ByCompany: make([]delayResponse, 0, len(d.ByCompany)),
	}
	for _, c := range d.ByCompany {
		resp.ByCompany = append(resp.ByCompany, toDelayResponse(c.Company, c.DelayStats))
	}
	writeJSON(w, http.StatusOK, resp)
}
