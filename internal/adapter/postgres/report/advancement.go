package report

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/roadworks-backend/internal/adapter/postgres"
	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

type advancementRow struct {
	ID               int64     `db:"id"`
	ReportID         int64     `db:"report_id"`
	PreviousStatusID int16     `db:"previous_status_id"`
	NewStatusID      int16     `db:"new_status_id"`
	ChangedAt        time.Time `db:"changed_at"`
}

func (r advancementRow) toDomain() domain.Advancement {
	return domain.Advancement{
		ID:             r.ID,
		ReportID:       r.ReportID,
		PreviousStatus: domain.StatusID(r.PreviousStatusID),
		NewStatus:      domain.StatusID(r.NewStatusID),
		ChangedAt:      r.ChangedAt,
	}
}

// AdvancementRepo persists the insert-only status audit trail.
type AdvancementRepo struct {
	db postgres.Querier
}

// NewAdvancementRepo creates a new advancement repository.
func NewAdvancementRepo(db postgres.Querier) *AdvancementRepo {
	return &AdvancementRepo{db: db}
}

// Create appends one audit entry.
func (r *AdvancementRepo) Create(ctx context.Context, a *domain.Advancement) (*domain.Advancement, error) {
	sql, args, err := postgres.Builder().Insert("advancements").
		Columns("report_id", "previous_status_id", "new_status_id", "changed_at").
		Values(a.ReportID, int16(a.PreviousStatus), int16(a.NewStatus), a.ChangedAt).
		Suffix("RETURNING id, report_id, previous_status_id, new_status_id, changed_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "advancement", a.ReportID)
	}

	var dst advancementRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, "advancement", a.ReportID)
	}
	out := dst.toDomain()
	return &out, nil
}

// ListByReport returns the audit trail of a report, oldest first.
func (r *AdvancementRepo) ListByReport(ctx context.Context, reportID int64) ([]domain.Advancement, error) {
	sql, args, err := postgres.Builder().
		Select("id", "report_id", "previous_status_id", "new_status_id", "changed_at").
		From("advancements").
		Where(squirrel.Eq{"report_id": reportID}).
		OrderBy("changed_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "advancement", reportID)
	}

	var rows []advancementRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "advancement", reportID)
	}

	out := make([]domain.Advancement, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

type delayRow struct {
	ReportID int64   `db:"report_id"`
	Company  string  `db:"company"`
	Hours    float64 `db:"hours"`
}

// ResolutionDelays returns, for each advancement into the resolved status,
// the hours elapsed since the report was filed.
func (r *AdvancementRepo) ResolutionDelays(ctx context.Context) ([]domain.ResolutionDelay, error) {
	sql, args, err := postgres.Builder().
		Select(
			"r.id AS report_id",
			"r.company AS company",
			"EXTRACT(EPOCH FROM (a.changed_at - r.reported_at))::float8 / 3600 AS hours",
		).
		From("advancements a").
		Join("reports r ON r.id = a.report_id").
		Where(squirrel.Eq{"a.new_status_id": int16(domain.StatusResolved)}).
		OrderBy("a.id ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "advancement", "delays")
	}

	var rows []delayRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "advancement", "delays")
	}

	out := make([]domain.ResolutionDelay, 0, len(rows))
	for _, rw := range rows {
		out = append(out, domain.ResolutionDelay{ReportID: rw.ReportID, Company: rw.Company, Hours: rw.Hours})
	}
	return out, nil
}
