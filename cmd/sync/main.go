// Command sync runs one pull-then-push pass between the local report store
// and the cloud collection. It is intended to be invoked by an external
// scheduler when the server's in-process worker is disabled.
//
// Exit codes: 0 = success, 1 = error or no cloud project configured.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/roadworks-backend/internal/app"
	"github.com/heartmarshall/roadworks-backend/internal/config"
	"github.com/heartmarshall/roadworks-backend/internal/service/recordsync"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	c, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("build services", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close()

	if c.Sync == nil {
		logger.Error("sync requires a cloud project, set CLOUD_PROJECT_ID")
		c.Close()
		os.Exit(1)
	}

	pull, push, err := c.Sync.SyncAll(ctx)
	logReport(logger, pull)
	logReport(logger, push)
	if err != nil {
		logger.Error("sync failed", slog.String("error", err.Error()))
		c.Close()
		os.Exit(1)
	}
}

func logReport(logger *slog.Logger, rep recordsync.Report) {
	if rep.Direction == "" {
		return
	}
	logger.Info("sync pass",
		slog.String("direction", string(rep.Direction)),
		slog.String("run_id", rep.RunID.String()),
		slog.Int("total", rep.Total),
		slog.Int("created", rep.Created),
		slog.Int("updated", rep.Updated),
		slog.Int("unchanged", rep.Unchanged),
		slog.Int("anomalies", rep.Anomalies),
		slog.Int("failed", rep.Failed),
		slog.Duration("took", rep.FinishedAt.Sub(rep.StartedAt)),
	)
}
