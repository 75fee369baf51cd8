package cmd

import (
	"log/slog"

	"logistics/internal/adapters/out/logistics"
	"logistics/internal/adapters/out/postgres/parcelrepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/redisstore"
	"logistics/internal/adapters/out/session"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/application/workflows"
	"logistics/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB           *gorm.DB
	logger           *slog.Logger
	sessionProvider  *session.Provider
	transitionClient *logistics.Client
	probe            *logistics.Probe
	routeRepository  *routerepo.GormRouteRepository
	parcelRepository *parcelrepo.GormParcelRepository
	notificationLog  *redisstore.NotificationLog
	confirmations    *workflows.Manager
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	logger *slog.Logger,
) CompositionRoot {
	sessionProvider := session.NewProvider([]byte(configs.SessionSecret))

	root := CompositionRoot{
		gormDB:           gormDB,
		logger:           logger,
		sessionProvider:  sessionProvider,
		transitionClient: logistics.NewClient(configs.LogisticsAPIBaseURL, sessionProvider, logger),
		probe:            logistics.NewProbe(configs.LogisticsProbeAddress, 0),
		routeRepository:  routerepo.NewGormRouteRepository(gormDB),
		parcelRepository: parcelrepo.NewGormParcelRepository(gormDB),
		notificationLog:  redisstore.NewNotificationLog(redisClient, 0),
	}

	root.confirmations = workflows.NewManager(
		root.routeRepository,
		root.CreateCompleteDeliveryCommandHandler(),
		root.CreateCancelDeliveryCommandHandler(),
		logger,
	)

	return root
}

func (c *CompositionRoot) SessionProvider() *session.Provider {
	return c.sessionProvider
}

func (c *CompositionRoot) ConfirmationManager() *workflows.Manager {
	return c.confirmations
}

func (c *CompositionRoot) CreateReserveRouteCommandHandler() commands.ReserveRouteCommandHandler {
	return commands.NewReserveRouteCommandHandler(c.routeRepository, c.transitionClient, c.probe)
}

func (c *CompositionRoot) CreateReleaseRouteCommandHandler() commands.ReleaseRouteCommandHandler {
	return commands.NewReleaseRouteCommandHandler(c.routeRepository, c.transitionClient, c.probe)
}

func (c *CompositionRoot) CreateStartRouteCommandHandler() commands.StartRouteCommandHandler {
	return commands.NewStartRouteCommandHandler(c.routeRepository, c.transitionClient)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.routeRepository, c.transitionClient)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	return commands.NewCancelDeliveryCommandHandler(c.routeRepository, c.transitionClient)
}

func (c *CompositionRoot) CreateGetCourierRoutesQueryHandler() queries.GetCourierRoutesQueryHandler {
	return queries.NewGetCourierRoutesQueryHandler(c.gormDB, c.sessionProvider)
}

func (c *CompositionRoot) CreateGetRoutesByStatusQueryHandler() queries.GetRoutesByStatusQueryHandler {
	return queries.NewGetRoutesByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteQueryHandler() queries.GetRouteQueryHandler {
	return queries.NewGetRouteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteParcelQueryHandler() queries.GetRouteParcelQueryHandler {
	return queries.NewGetRouteParcelQueryHandler(c.parcelRepository)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.routeRepository, c.notificationLog, c.logger)
}
