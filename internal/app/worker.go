package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
	"github.com/heartmarshall/roadworks-backend/internal/service/recordsync"
)

type syncAller interface {
	SyncAll(ctx context.Context) (recordsync.Report, recordsync.Report, error)
}

// syncWorker runs a full sync pass at start-up and then on every tick.
type syncWorker struct {
	log      *slog.Logger
	engine   syncAller
	interval time.Duration
}

func newSyncWorker(logger *slog.Logger, engine syncAller, interval time.Duration) *syncWorker {
	return &syncWorker{
		log:      logger.With("worker", "sync"),
		engine:   engine,
		interval: interval,
	}
}

// Run blocks until ctx is cancelled.
func (w *syncWorker) Run(ctx context.Context) {
	w.log.Info("sync worker started", slog.Duration("interval", w.interval))

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		w.runOnce(ctx)

		select {
		case <-ctx.Done():
			w.log.Info("sync worker stopped")
			return
		case <-t.C:
		}
	}
}

func (w *syncWorker) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	pull, push, err := w.engine.SyncAll(ctx)
	switch {
	case errors.Is(err, domain.ErrUnreachable):
		w.log.WarnContext(ctx, "sync skipped, cloud unreachable")
		return
	case err != nil:
		w.log.ErrorContext(ctx, "sync pass failed", slog.String("error", err.Error()))
		return
	}

	w.log.InfoContext(ctx, "sync pass completed",
		slog.Int("pulled", pull.Total),
		slog.Int("created", pull.Created),
		slog.Int("updated", pull.Updated),
		slog.Int("anomalies", pull.Anomalies),
		slog.Int("pushed", push.Updated),
		slog.Int("failed", pull.Failed+push.Failed),
	)
}
