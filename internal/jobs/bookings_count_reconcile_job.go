package jobs

import (
	"context"
	"log/slog"

	"devbook/internal/core/application/usecases/commands"
	"devbook/internal/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultReconcileSchedule runs the reconciliation every ten minutes.
const DefaultReconcileSchedule = "@every 10m"

// BookingsRecounter recomputes denormalised booking counters.
type BookingsRecounter interface {
	Handle(ctx context.Context, cmd commands.RecountBookingsCommand) (int64, error)
}

// BookingsCountReconcileJob repairs developers whose bookings_count drifted from
// the bookings table, for example after bookings were removed directly in SQL.
type BookingsCountReconcileJob struct {
	handler  BookingsRecounter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBookingsCountReconcileJob creates the job. An empty schedule falls back to
// DefaultReconcileSchedule.
func NewBookingsCountReconcileJob(
	handler BookingsRecounter,
	schedule string,
	logger *slog.Logger,
) *BookingsCountReconcileJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}

	return &BookingsCountReconcileJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "bookings_count_reconcile_job"),
	}
}

// Start schedules the job. It fails on a malformed schedule.
func (j *BookingsCountReconcileJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Bookings count reconcile job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single reconciliation and returns the number of corrected developers.
func (j *BookingsCountReconcileJob) RunOnce(ctx context.Context) int64 {
	changed, err := j.handler.Handle(ctx, commands.NewRecountBookingsCommand())
	if err != nil {
		metrics.BookingsCountReconcileRuns.WithLabelValues(metrics.ResultFailure).Inc()
		j.logger.ErrorContext(ctx, "Bookings count reconcile job failed", "error", err)
		return 0
	}

	metrics.BookingsCountReconcileRuns.WithLabelValues(metrics.ResultSuccess).Inc()
	if changed > 0 {
		metrics.BookingsCountCorrections.Add(float64(changed))
		j.logger.InfoContext(ctx, "Bookings counters corrected", "developers", changed)
	}

	return changed
}

// Stop stops the scheduler and waits for a running reconciliation to finish.
func (j *BookingsCountReconcileJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Bookings count reconcile job stopped")
}
