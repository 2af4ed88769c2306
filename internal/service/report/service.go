// Package report manages road-work reports: creation, field updates gated by
// the status workflow, the advancement audit trail and statistics.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// reportRepo defines the report persistence needed by report service.
type reportRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Record, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Record, error)
	List(ctx context.Context, f domain.RecordFilter) ([]domain.Record, error)
	Create(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	Update(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	Delete(ctx context.Context, id int64) error
	Totals(ctx context.Context) (domain.RecordTotals, error)
}

// advancementRepo defines the audit trail persistence needed by report service.
type advancementRepo interface {
	Create(ctx context.Context, a *domain.Advancement) (*domain.Advancement, error)
	ListByReport(ctx context.Context, reportID int64) ([]domain.Advancement, error)
	ResolutionDelays(ctx context.Context) ([]domain.ResolutionDelay, error)
}

// photoSource lists the cloud photos of a report.
type photoSource interface {
	ListByReport(ctx context.Context, externalID string) ([]domain.Photo, error)
}

// txManager defines the transaction manager interface needed by report service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements report operations.
type Service struct {
	log          *slog.Logger
	reports      reportRepo
	advancements advancementRepo
	tx           txManager
	photos       photoSource
	now          func() time.Time
}

// NewService creates a new report service. photos may be nil when no cloud
// project is configured; reports then have no photos.
func NewService(logger *slog.Logger, reports reportRepo, advancements advancementRepo, photos photoSource, tx txManager) *Service {
	return &Service{
		log:          logger.With("service", "report"),
		reports:      reports,
		advancements: advancements,
		tx:           tx,
		photos:       photos,
		now:          time.Now,
	}
}
