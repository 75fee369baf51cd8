package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	routeWatchJob *RouteWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	routes ports.RouteRepository,
	notificationLog ports.NotificationLog,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		routeWatchJob: NewRouteWatchJob(routes, notificationLog, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.routeWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start route watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.routeWatchJob.Stop()
}
