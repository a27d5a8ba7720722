package jobs

import (
	"context"
	"log/slog"

	"customerorder/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrphanedOrdersAuditJob periodically counts orders whose customer has been deleted.
// Deleting a customer leaves its orders in place, so this is the only place the count surfaces.
type OrphanedOrdersAuditJob struct {
	handler  queries.CountOrphanedOrdersQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrphanedOrdersAuditJob creates the job. schedule is a standard cron spec or descriptor
// such as "@hourly".
func NewOrphanedOrdersAuditJob(
	handler queries.CountOrphanedOrdersQueryHandler,
	schedule string,
	logger *slog.Logger,
) *OrphanedOrdersAuditJob {
	return &OrphanedOrdersAuditJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "orphaned_orders_audit_job"),
	}
}

// Start registers the schedule and starts the cron scheduler.
func (j *OrphanedOrdersAuditJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Orphaned orders audit job started", "schedule", j.schedule)
	return nil
}

// Run performs a single audit.
func (j *OrphanedOrdersAuditJob) Run(ctx context.Context) {
	n, err := j.handler.Handle(ctx, queries.NewCountOrphanedOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Orphaned orders audit failed", "error", err)
		return
	}
	if n > 0 {
		j.logger.WarnContext(ctx, "Orders reference customers that no longer exist", "orphaned_orders", n)
		return
	}
	j.logger.InfoContext(ctx, "No orphaned orders found")
}

// Stop stops the scheduler and waits for a running audit to finish.
func (j *OrphanedOrdersAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Orphaned orders audit job stopped")
}
