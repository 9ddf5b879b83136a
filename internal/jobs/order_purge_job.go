// Package jobs provides scheduled background tasks.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager, which the composition root starts after the HTTP server is
// wired and stops on shutdown.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"packtrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// defaultRetention is how long soft-deleted orders stay recoverable before
// the purge removes them for good.
const defaultRetention = 30 * 24 * time.Hour

// purgeSchedule runs the purge nightly, off peak.
const purgeSchedule = "0 3 * * *"

// OrderPurgeJob permanently removes orders that were soft-deleted longer
// than the retention period ago. Deletion through the API only marks rows;
// this job is what actually reclaims them.
type OrderPurgeJob struct {
	uowFactory commands.OrderUoWFactory
	retention  time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOrderPurgeJob creates the purge job. A non-positive retention falls
// back to the 30-day default.
func NewOrderPurgeJob(
	uowFactory commands.OrderUoWFactory,
	retention time.Duration,
	logger *slog.Logger,
) *OrderPurgeJob {
	if retention <= 0 {
		retention = defaultRetention
	}
	return &OrderPurgeJob{
		uowFactory: uowFactory,
		retention:  retention,
		cron:       cron.New(),
		logger:     logger.With("component", "order_purge_job"),
	}
}

// Start schedules the nightly purge run.
func (j *OrderPurgeJob) Start() error {
	_, err := j.cron.AddFunc(purgeSchedule, j.runOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order purge job started",
		"schedule", purgeSchedule, "retention", j.retention.String())
	return nil
}

// Stop stops the purge job.
func (j *OrderPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order purge job stopped")
}

func (j *OrderPurgeJob) runOnce() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.retention)

	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Order purge failed to begin transaction", "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.OrderRepository().PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order purge failed", "error", err)
		return
	}

	if err = uow.Commit(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Order purge failed to commit", "error", err)
		return
	}

	if purged > 0 {
		j.logger.InfoContext(ctx, "Purged soft-deleted orders", "count", purged, "cutoff", cutoff)
	}
}
