// Package jobs provides scheduled background tasks for devbook.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and delegate the actual work
// to command handlers.
//
// # Available Jobs
//
// BookingsCountReconcileJob recounts bookings per developer and rewrites every
// bookings_count that differs. Booking creation keeps the counter current; the
// job repairs drift caused by changes made outside the service. The schedule is
// configurable and defaults to "@every 10m". Overlapping runs are skipped.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(recountHandler, cfg.RecountSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and counted in devbook_bookings_count_reconcile_runs_total;
// the next run retries from scratch.
package jobs
