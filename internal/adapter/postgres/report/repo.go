// Package report implements road-work report and advancement persistence using PostgreSQL.
package report

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/roadworks-backend/internal/adapter/postgres"
	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

const table = "reports"

var columns = []string{
	"id", "external_id", "latitude", "longitude", "description", "surface", "price_per_unit",
	"level", "budget", "company", "status_id", "reported_at", "dirty", "updated_at",
}

const returning = "RETURNING id, external_id, latitude, longitude, description, surface, price_per_unit, " +
	"level, budget, company, status_id, reported_at, dirty, updated_at"

type row struct {
	ID           int64     `db:"id"`
	ExternalID   *string   `db:"external_id"`
	Latitude     float64   `db:"latitude"`
	Longitude    float64   `db:"longitude"`
	Description  string    `db:"description"`
	Surface      float64   `db:"surface"`
	PricePerUnit float64   `db:"price_per_unit"`
	Level        int       `db:"level"`
	Budget       float64   `db:"budget"`
	Company      string    `db:"company"`
	StatusID     int16     `db:"status_id"`
	ReportedAt   time.Time `db:"reported_at"`
	Dirty        bool      `db:"dirty"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Record {
	rec := domain.Record{
		ID:           r.ID,
		Location:     domain.GeoPoint{Latitude: r.Latitude, Longitude: r.Longitude},
		Description:  r.Description,
		Surface:      r.Surface,
		PricePerUnit: r.PricePerUnit,
		Level:        r.Level,
		Budget:       r.Budget,
		Company:      r.Company,
		Status:       domain.StatusID(r.StatusID),
		ReportedAt:   r.ReportedAt,
		Dirty:        r.Dirty,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.ExternalID != nil {
		rec.ExternalID = *r.ExternalID
	}
	return rec
}

func nullableExternalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new report repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) getOne(ctx context.Context, key any, b squirrel.Sqlizer) (*domain.Record, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "report", key)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "report", key)
	}
	rec := dst.toDomain()
	return &rec, nil
}

func (r *Repo) list(ctx context.Context, key any, b squirrel.SelectBuilder) ([]domain.Record, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "report", key)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "report", key)
	}

	out := make([]domain.Record, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// GetByID returns a report by local id.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Record, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	return r.getOne(ctx, id, q)
}

// GetByIDForUpdate returns a report by local id and locks the row until the
// surrounding transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Record, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE")
	return r.getOne(ctx, id, q)
}

// List returns reports matching f ordered by id.
func (r *Repo) List(ctx context.Context, f domain.RecordFilter) ([]domain.Record, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("id ASC")
	if f.Status != 0 {
		q = q.Where(squirrel.Eq{"status_id": int16(f.Status)})
	}
	if f.Company != "" {
		q = q.Where(squirrel.Eq{"company": f.Company})
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	return r.list(ctx, "list", q)
}

// ListByExternalID returns every local report linked to the cloud document,
// lowest id first. More than one row means a legacy duplicate.
func (r *Repo) ListByExternalID(ctx context.Context, externalID string) ([]domain.Record, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"external_id": externalID}).
		OrderBy("id ASC")
	return r.list(ctx, externalID, q)
}

// ListLinked returns every report that has a cloud document id.
func (r *Repo) ListLinked(ctx context.Context) ([]domain.Record, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.And{squirrel.NotEq{"external_id": nil}, squirrel.NotEq{"external_id": ""}}).
		OrderBy("id ASC")
	return r.list(ctx, "linked", q)
}

// Create inserts rec and returns the stored row.
func (r *Repo) Create(ctx context.Context, rec *domain.Record) (*domain.Record, error) {
	q := postgres.Builder().Insert(table).
		Columns(columns[1:]...).
		Values(
			nullableExternalID(rec.ExternalID), rec.Location.Latitude, rec.Location.Longitude,
			rec.Description, rec.Surface, rec.PricePerUnit, rec.Level, rec.Budget, rec.Company,
			int16(rec.Status), rec.ReportedAt, rec.Dirty, rec.UpdatedAt,
		).
		Suffix(returning)
	return r.getOne(ctx, rec.ExternalID, q)
}

// Update overwrites every mutable column of the report with id rec.ID.
func (r *Repo) Update(ctx context.Context, rec *domain.Record) (*domain.Record, error) {
	q := postgres.Builder().Update(table).
		SetMap(map[string]any{
			"external_id":    nullableExternalID(rec.ExternalID),
			"latitude":       rec.Location.Latitude,
			"longitude":      rec.Location.Longitude,
			"description":    rec.Description,
			"surface":        rec.Surface,
			"price_per_unit": rec.PricePerUnit,
			"level":          rec.Level,
			"budget":         rec.Budget,
			"company":        rec.Company,
			"status_id":      int16(rec.Status),
			"reported_at":    rec.ReportedAt,
			"dirty":          rec.Dirty,
			"updated_at":     rec.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": rec.ID}).
		Suffix(returning)
	return r.getOne(ctx, rec.ID, q)
}

// Delete removes a report and, by cascade, its advancements.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	n, err := postgres.Exec(ctx, r.db, postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "report", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "report", id)
	}
	return nil
}

// MarkClean clears the dirty flag if the row was not modified after
// updatedAt. It reports whether the flag was cleared.
func (r *Repo) MarkClean(ctx context.Context, id int64, updatedAt time.Time) (bool, error) {
	n, err := postgres.Exec(ctx, r.db, postgres.Builder().Update(table).
		Set("dirty", false).
		Where(squirrel.Eq{"id": id, "updated_at": updatedAt}))
	if err != nil {
		return false, postgres.MapError(err, "report", id)
	}
	return n > 0, nil
}

type totalsRow struct {
	Count             int     `db:"count"`
	TotalSurface      float64 `db:"total_surface"`
	TotalBudget       float64 `db:"total_budget"`
	CompletionPercent float64 `db:"completion_percent"`
}

// Totals computes report-wide aggregates in one query.
func (r *Repo) Totals(ctx context.Context) (domain.RecordTotals, error) {
	sql, args, err := postgres.Builder().
		Select(
			"count(*) AS count",
			"COALESCE(sum(r.surface), 0) AS total_surface",
			"COALESCE(sum(r.budget), 0) AS total_budget",
			"COALESCE(avg(s.progress), 0)::float8 AS completion_percent",
		).
		From("reports r").
		Join("report_statuses s ON s.id = r.status_id").
		ToSql()
	if err != nil {
		return domain.RecordTotals{}, postgres.MapError(err, "report", "totals")
	}

	var t totalsRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &t, sql, args...); err != nil {
		return domain.RecordTotals{}, postgres.MapError(err, "report", "totals")
	}
	return domain.RecordTotals(t), nil
}
