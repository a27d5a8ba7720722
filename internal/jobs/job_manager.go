package jobs

import (
	"fmt"
	"log/slog"

	"customerorder/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orphanedOrdersAuditJob *OrphanedOrdersAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
// An empty auditSchedule disables the orphaned orders audit.
func NewJobManager(
	countOrphanedHandler queries.CountOrphanedOrdersQueryHandler,
	auditSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if auditSchedule != "" {
		jm.orphanedOrdersAuditJob = NewOrphanedOrdersAuditJob(countOrphanedHandler, auditSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.orphanedOrdersAuditJob == nil {
		return nil
	}
	if err := jm.orphanedOrdersAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start orphaned orders audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.orphanedOrdersAuditJob != nil {
		jm.orphanedOrdersAuditJob.Stop()
	}
}
