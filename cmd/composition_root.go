package cmd

import (
	"context"

	httpin "fieldservice/internal/adapters/in/http"
	"fieldservice/internal/adapters/out/database"
	"fieldservice/internal/adapters/out/database/jobrepo"
	"fieldservice/internal/adapters/out/database/routerepo"
	"fieldservice/internal/adapters/out/progress"
	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/ports"
	"fieldservice/internal/pkg/retry"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *database.GormUnitOfWorkFactory
	retrier    *retry.Policy
	clock      ports.Clock
	observer   ports.CompletionObserver
	logger     *zap.SugaredLogger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.SugaredLogger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: database.NewGormUnitOfWorkFactory(gormDB),
		retrier:    retry.NewPolicy(config.Retry(), logger),
		clock:      ports.SystemClock,
		observer:   progress.NewLogObserver(logger),
		logger:     logger,
	}
}

// WithClock replaces the wall clock, letting tests pin "now".
func (c CompositionRoot) WithClock(clock ports.Clock) CompositionRoot {
	c.clock = clock
	return c
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) jobUoW() commands.JobUoWFactory {
	return FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	return commands.NewCreateJobCommandHandler(c.jobUoW(), c.retrier)
}

func (c *CompositionRoot) CreateUpdateJobCommandHandler() commands.UpdateJobCommandHandler {
	return commands.NewUpdateJobCommandHandler(c.uow(), c.retrier)
}

func (c *CompositionRoot) CreateDeleteJobCommandHandler() commands.DeleteJobCommandHandler {
	return commands.NewDeleteJobCommandHandler(c.uow(), c.retrier)
}

func (c *CompositionRoot) CreateCompleteJobCommandHandler() commands.CompleteJobCommandHandler {
	return commands.NewCompleteJobCommandHandler(c.uow(), c.retrier, c.clock, c.observer)
}

func (c *CompositionRoot) CreateCancelJobCommandHandler() commands.CancelJobCommandHandler {
	return commands.NewCancelJobCommandHandler(c.uow(), c.retrier)
}

func (c *CompositionRoot) CreateUpsertSlotCommandHandler() commands.UpsertSlotCommandHandler {
	return commands.NewUpsertSlotCommandHandler(c.uow(), c.retrier)
}

func (c *CompositionRoot) CreateDeleteSlotCommandHandler() commands.DeleteSlotCommandHandler {
	return commands.NewDeleteSlotCommandHandler(c.uow(), c.retrier)
}

func (c *CompositionRoot) CreateRescheduleSlotCommandHandler() commands.RescheduleSlotCommandHandler {
	return commands.NewRescheduleSlotCommandHandler(c.uow(), c.retrier)
}

func (c *CompositionRoot) CreateAssignRouteCommandHandler() commands.AssignRouteCommandHandler {
	return commands.NewAssignRouteCommandHandler(c.uow(), c.retrier)
}

func (c *CompositionRoot) CreateCompleteRouteCommandHandler() commands.CompleteRouteCommandHandler {
	return commands.NewCompleteRouteCommandHandler(c.uow(), c.retrier, c.clock, c.observer)
}

func (c *CompositionRoot) CreateReplaceWeekCommandHandler() commands.ReplaceWeekCommandHandler {
	return commands.NewReplaceWeekCommandHandler(c.uow(), c.retrier)
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(jobrepo.NewGormJobRepository(c.gormDB, nil))
}

func (c *CompositionRoot) CreateFindJobsQueryHandler() queries.FindJobsQueryHandler {
	return queries.NewFindJobsQueryHandler(jobrepo.NewGormJobRepository(c.gormDB, nil))
}

func (c *CompositionRoot) CreateGetAvailablePoolQueryHandler() queries.GetAvailablePoolQueryHandler {
	return queries.NewGetAvailablePoolQueryHandler(
		jobrepo.NewGormJobRepository(c.gormDB, nil),
		routerepo.NewGormRouteRepository(c.gormDB, nil),
		c.clock,
	)
}

func (c *CompositionRoot) CreateGetWeekScheduleQueryHandler() queries.GetWeekScheduleQueryHandler {
	return queries.NewGetWeekScheduleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDayRoutesQueryHandler() queries.ListDayRoutesQueryHandler {
	return queries.NewListDayRoutesQueryHandler(c.gormDB)
}

// CreateServer assembles the HTTP server from every command and query handler.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			CreateJob:      c.CreateCreateJobCommandHandler(),
			UpdateJob:      c.CreateUpdateJobCommandHandler(),
			DeleteJob:      c.CreateDeleteJobCommandHandler(),
			CompleteJob:    c.CreateCompleteJobCommandHandler(),
			CancelJob:      c.CreateCancelJobCommandHandler(),
			UpsertSlot:     c.CreateUpsertSlotCommandHandler(),
			DeleteSlot:     c.CreateDeleteSlotCommandHandler(),
			RescheduleSlot: c.CreateRescheduleSlotCommandHandler(),
			AssignRoute:    c.CreateAssignRouteCommandHandler(),
			CompleteRoute:  c.CreateCompleteRouteCommandHandler(),
			ReplaceWeek:    c.CreateReplaceWeekCommandHandler(),
		},
		httpin.QueryHandlers{
			GetJob:           c.CreateGetJobQueryHandler(),
			FindJobs:         c.CreateFindJobsQueryHandler(),
			GetAvailablePool: c.CreateGetAvailablePoolQueryHandler(),
			GetWeekSchedule:  c.CreateGetWeekScheduleQueryHandler(),
			ListDayRoutes:    c.CreateListDayRoutesQueryHandler(),
		},
	)
}

// CreateRouter returns the echo instance serving the API.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	health := func(ctx context.Context) error {
		return database.Ping(ctx, c.gormDB)
	}
	return httpin.NewRouter(c.CreateServer(), health, c.logger)
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
