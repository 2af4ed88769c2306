// Package recordsync reconciles road-work reports between the local store and
// the cloud document collection. Each direction overwrites the other side:
// a pull makes local records mirror the cloud, a push makes the cloud mirror
// linked local records.
package recordsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// reportRepo defines the report persistence needed by the sync engine.
type reportRepo interface {
	ListByExternalID(ctx context.Context, externalID string) ([]domain.Record, error)
	ListLinked(ctx context.Context) ([]domain.Record, error)
	Create(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	Update(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	MarkClean(ctx context.Context, id int64, updatedAt time.Time) (bool, error)
}

// advancementRepo defines the audit trail persistence needed by the sync engine.
type advancementRepo interface {
	Create(ctx context.Context, a *domain.Advancement) (*domain.Advancement, error)
}

// documentStore defines the cloud collection operations needed by the sync engine.
type documentStore interface {
	ListDocuments(ctx context.Context) ([]domain.CloudDocument, error)
	UpsertDocument(ctx context.Context, doc domain.CloudDocument) error
}

// connectivity reports whether the cloud is reachable.
type connectivity interface {
	IsOnline(ctx context.Context) bool
}

// txManager defines the transaction manager interface needed by the sync engine.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds sync engine tuning.
type Config struct {
	Parallelism int
}

// Engine runs pull and push passes. Passes never overlap.
type Engine struct {
	log          *slog.Logger
	reports      reportRepo
	advancements advancementRepo
	docs         documentStore
	probe        connectivity
	tx           txManager
	parallelism  int
	now          func() time.Time

	mu sync.Mutex
}

// NewEngine creates a new sync engine.
func NewEngine(
	logger *slog.Logger,
	reports reportRepo,
	advancements advancementRepo,
	docs documentStore,
	probe connectivity,
	tx txManager,
	cfg Config,
) *Engine {
	parallelism := cfg.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}
	return &Engine{
		log:          logger.With("service", "sync"),
		reports:      reports,
		advancements: advancements,
		docs:         docs,
		probe:        probe,
		tx:           tx,
		parallelism:  parallelism,
		now:          time.Now,
	}
}

// SyncAll pulls then pushes. The push is skipped if the pull could not run.
func (e *Engine) SyncAll(ctx context.Context) (Report, Report, error) {
	pull, err := e.Pull(ctx)
	if err != nil {
		return pull, Report{}, err
	}
	push, err := e.Push(ctx)
	return pull, push, err
}

// Pull makes every local record linked to a cloud document mirror it,
// creating records for unseen documents. Per-document problems are counted
// in the report and skipped; only failing to list the collection aborts.
func (e *Engine) Pull(ctx context.Context) (Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rep := newTally(DirectionPull, e.now())
	log := e.log.With("run_id", rep.rep.RunID.String(), "direction", string(DirectionPull))

	if !e.probe.IsOnline(ctx) {
		return rep.finish(e.now()), fmt.Errorf("sync.Pull: %w", domain.ErrUnreachable)
	}

	docs, err := e.docs.ListDocuments(ctx)
	if err != nil {
		return rep.finish(e.now()), fmt.Errorf("sync.Pull list documents: %w", err)
	}

	var g errgroup.Group
	g.SetLimit(e.parallelism)
	for _, doc := range docs {
		g.Go(func() error {
			outcome, err := e.pullOne(ctx, log, doc)
			rep.record(outcome)
			if err != nil {
				logSkipped(ctx, log, doc.ID, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return e.done(ctx, log, rep), nil
}

// pullOne applies one document under its own transaction.
func (e *Engine) pullOne(ctx context.Context, log *slog.Logger, doc domain.CloudDocument) (outcome, error) {
	result := outcomeUnchanged

	err := e.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := e.reports.ListByExternalID(txCtx, doc.ID)
		if err != nil {
			return err
		}

		if len(existing) == 0 {
			rec, err := fromDocument(doc, nil, e.now())
			if err != nil {
				return err
			}
			if _, err := e.reports.Create(txCtx, rec); err != nil {
				return err
			}
			result = outcomeCreated
			return nil
		}

		// Legacy duplicates are left alone; the lowest id is authoritative.
		if len(existing) > 1 {
			ids := make([]int64, 0, len(existing))
			for _, r := range existing {
				ids = append(ids, r.ID)
			}
			log.WarnContext(ctx, "duplicate local records for document",
				slog.String("external_id", doc.ID), slog.Any("report_ids", ids), slog.Int64("kept", ids[0]))
			duplicatesTotal.Inc()
		}
		local := existing[0]

		rec, err := fromDocument(doc, &local, e.now())
		if err != nil {
			return err
		}
		rec.ID = local.ID

		if sameContent(&local, rec) {
			return nil
		}

		if rec.Status != local.Status {
			if err := domain.CheckTransition(local.Status, rec.Status); err != nil {
				return &domain.AnomalyError{ExternalID: doc.ID, Field: fieldStatus, Reason: err.Error()}
			}
			if _, err := e.advancements.Create(txCtx, &domain.Advancement{
				ReportID:       local.ID,
				PreviousStatus: local.Status,
				NewStatus:      rec.Status,
				ChangedAt:      rec.UpdatedAt,
			}); err != nil {
				return err
			}
		}

		if _, err := e.reports.Update(txCtx, rec); err != nil {
			return err
		}
		result = outcomeUpdated
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDataAnomaly) {
			return outcomeAnomaly, err
		}
		return outcomeFailed, err
	}
	return result, nil
}

// Push upserts every linked local record into the cloud and clears its dirty
// flag. Records without an external id are not pushed. Per-record failures
// are counted and skipped; only failing to list local records aborts.
func (e *Engine) Push(ctx context.Context) (Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rep := newTally(DirectionPush, e.now())
	log := e.log.With("run_id", rep.rep.RunID.String(), "direction", string(DirectionPush))

	if !e.probe.IsOnline(ctx) {
		return rep.finish(e.now()), fmt.Errorf("sync.Push: %w", domain.ErrUnreachable)
	}

	recs, err := e.reports.ListLinked(ctx)
	if err != nil {
		return rep.finish(e.now()), fmt.Errorf("sync.Push list records: %w", err)
	}

	var g errgroup.Group
	g.SetLimit(e.parallelism)
	for _, rec := range recs {
		if !rec.IsLinked() {
			continue
		}
		g.Go(func() error {
			outcome, err := e.pushOne(ctx, &rec)
			rep.record(outcome)
			if err != nil {
				logSkipped(ctx, log, rec.ExternalID, err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return e.done(ctx, log, rep), nil
}

func (e *Engine) pushOne(ctx context.Context, rec *domain.Record) (outcome, error) {
	if err := e.docs.UpsertDocument(ctx, toDocument(rec)); err != nil {
		return outcomeFailed, err
	}

	if rec.Dirty {
		// A local edit made while the upsert was in flight keeps the flag.
		if _, err := e.reports.MarkClean(ctx, rec.ID, rec.UpdatedAt); err != nil {
			return outcomeFailed, fmt.Errorf("mark clean: %w", err)
		}
	}
	return outcomeUpdated, nil
}

func (e *Engine) done(ctx context.Context, log *slog.Logger, rep *tally) Report {
	out := rep.finish(e.now())
	passDuration.WithLabelValues(string(out.Direction)).Observe(out.FinishedAt.Sub(out.StartedAt).Seconds())

	log.InfoContext(ctx, "sync pass finished",
		slog.Int("total", out.Total),
		slog.Int("created", out.Created),
		slog.Int("updated", out.Updated),
		slog.Int("unchanged", out.Unchanged),
		slog.Int("anomalies", out.Anomalies),
		slog.Int("failed", out.Failed),
	)
	return out
}

func logSkipped(ctx context.Context, log *slog.Logger, externalID string, err error) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrDataAnomaly) {
		level = slog.LevelWarn
	}
	log.Log(ctx, level, "record skipped",
		slog.String("external_id", externalID), slog.String("error", err.Error()))
}
