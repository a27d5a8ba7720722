// Package jobs provides scheduled background tasks for the customer order service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OrphanedOrdersAuditJob counts orders whose customer no longer exists and logs the result.
// Customers can be deleted while they still have orders, and those orders are kept.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(countOrphanedHandler, "@hourly", logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the standard five-field cron syntax or descriptors like "@hourly" and "@every 10m".
// An empty schedule disables the job.
package jobs
