package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// routeWatchSchedule polls every 30 seconds, matching the refresh interval of
// the route list screen.
const routeWatchSchedule = "*/30 * * * * *"

// RouteWatchJob polls for newly available unassigned routes and announces
// each one exactly once through the notification log.
type RouteWatchJob struct {
	routes ports.RouteRepository
	log    ports.NotificationLog
	cron   *cron.Cron
	logger *slog.Logger
}

// NewRouteWatchJob creates the route watch job.
func NewRouteWatchJob(
	routes ports.RouteRepository,
	log ports.NotificationLog,
	logger *slog.Logger,
) *RouteWatchJob {
	return &RouteWatchJob{
		routes: routes,
		log:    log,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "route_watch_job"),
	}
}

// Start begins polling for available routes every 30 seconds.
func (j *RouteWatchJob) Start() error {
	_, err := j.cron.AddFunc(routeWatchSchedule, j.tick)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Route watch job started (running every 30 seconds)")
	return nil
}

// Stop stops the route watch job.
func (j *RouteWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Route watch job stopped")
}

func (j *RouteWatchJob) tick() {
	ctx := context.Background()

	routes, err := j.routes.GetAllByStatus(ctx, route.Available, ports.CourierFilter{UnassignedOnly: true})
	if err != nil {
		j.logger.ErrorContext(ctx, "Route watch poll failed", "error", err)
		return
	}

	for _, r := range routes {
		first, markErr := j.log.MarkNotified(ctx, r.ID())
		if markErr != nil {
			j.logger.ErrorContext(ctx, "Route notification dedupe failed",
				"route_id", r.ID().String(), "error", markErr)
			continue
		}
		if !first {
			continue
		}

		j.logger.InfoContext(ctx, "New route available",
			"route_id", r.ID().String(),
			"client", r.Client(),
			"destination", r.Destination().Details(),
		)
	}
}
