// Package jobs provides the scheduled background tasks of the courier client.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. RouteWatchJob - Runs every 30 seconds to poll for newly available routes
// and announce each one once, using the notification log for deduplication.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(routeRepository, notificationLog, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The route watch job logs polling and notification failures and tries again
// on the next tick; a failed poll never stops the schedule.
package jobs
