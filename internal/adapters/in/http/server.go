// Package http exposes the scheduling service over the OpenAPI contract in
// internal/generated/servers.
package http

import (
	"net/http"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/ports"
	"fieldservice/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// CommandHandlers groups the write side of the API.
type CommandHandlers struct {
	CreateJob      commands.CreateJobCommandHandler
	UpdateJob      commands.UpdateJobCommandHandler
	DeleteJob      commands.DeleteJobCommandHandler
	CompleteJob    commands.CompleteJobCommandHandler
	CancelJob      commands.CancelJobCommandHandler
	UpsertSlot     commands.UpsertSlotCommandHandler
	DeleteSlot     commands.DeleteSlotCommandHandler
	RescheduleSlot commands.RescheduleSlotCommandHandler
	AssignRoute    commands.AssignRouteCommandHandler
	CompleteRoute  commands.CompleteRouteCommandHandler
	ReplaceWeek    commands.ReplaceWeekCommandHandler
}

// QueryHandlers groups the read side of the API.
type QueryHandlers struct {
	GetJob           queries.GetJobQueryHandler
	FindJobs         queries.FindJobsQueryHandler
	GetAvailablePool queries.GetAvailablePoolQueryHandler
	GetWeekSchedule  queries.GetWeekScheduleQueryHandler
	ListDayRoutes    queries.ListDayRoutesQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases; errors are
// returned to echo and rendered by ErrorHandler.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
	}
}

// FindJobs handles GET /api/v1/jobs.
func (s *Server) FindJobs(ctx echo.Context, params servers.FindJobsParams) error {
	filter := ports.JobFilter{UnscheduledOnly: params.Unscheduled != nil && *params.Unscheduled}
	if params.Status != nil {
		for _, name := range *params.Status {
			status, err := job.ParseStatus(string(name))
			if err != nil {
				return err
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}
	if params.ScheduledDay != nil {
		day, err := fromWeekday(*params.ScheduledDay)
		if err != nil {
			return err
		}
		filter.ScheduledDay = &day
	}

	query, err := queries.NewFindJobsQuery(accountID(ctx), filter)
	if err != nil {
		return err
	}
	found, err := s.queries.FindJobs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Job, 0)
	for j, err := range found {
		if err != nil {
			return err
		}
		response = append(response, toJob(j))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateJob handles POST /api/v1/jobs. The job id is assigned by the service.
func (s *Server) CreateJob(ctx echo.Context) error {
	var body servers.CreateJobJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	pattern, err := fromPattern(body.RecurrencePattern)
	if err != nil {
		return err
	}
	customerID, err := kernel.UUIDFromPtr(body.CustomerId)
	if err != nil {
		return err
	}
	details := job.Details{Title: body.Title, CustomerID: customerID}
	if body.Address != nil {
		details.Address = *body.Address
	}
	isRecurring := body.RecurrencePattern != nil
	if body.IsRecurring != nil {
		isRecurring = *body.IsRecurring
	}

	jobID := kernel.NewUUID()
	cmd, err := commands.NewCreateJobCommand(accountID(ctx), jobID, details, isRecurring, pattern)
	if err != nil {
		return err
	}
	if err = s.commands.CreateJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondJob(ctx, http.StatusCreated, jobID)
}

// GetAvailableJobs handles GET /api/v1/jobs/available.
func (s *Server) GetAvailableJobs(ctx echo.Context) error {
	query, err := queries.NewGetAvailablePoolQuery(accountID(ctx))
	if err != nil {
		return err
	}
	pool, err := s.queries.GetAvailablePool.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Job, 0)
	for j, err := range pool {
		if err != nil {
			return err
		}
		response = append(response, toJob(j))
	}
	return ctx.JSON(http.StatusOK, response)
}

// DeleteJob handles DELETE /api/v1/jobs/{jobId}.
func (s *Server) DeleteJob(ctx echo.Context, jobID servers.JobIdPath) error {
	id, err := fromID(jobID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteJobCommand(accountID(ctx), id)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetJob handles GET /api/v1/jobs/{jobId}.
func (s *Server) GetJob(ctx echo.Context, jobID servers.JobIdPath) error {
	id, err := fromID(jobID)
	if err != nil {
		return err
	}
	return s.respondJob(ctx, http.StatusOK, id)
}

// UpdateJob handles PATCH /api/v1/jobs/{jobId}.
func (s *Server) UpdateJob(ctx echo.Context, jobID servers.JobIdPath) error {
	id, err := fromID(jobID)
	if err != nil {
		return err
	}
	var body servers.UpdateJobJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return err
	}
	patch, err := fromJobPatch(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateJobCommand(accountID(ctx), id, patch)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondJob(ctx, http.StatusOK, id)
}

// CancelJob handles POST /api/v1/jobs/{jobId}/cancel.
func (s *Server) CancelJob(ctx echo.Context, jobID servers.JobIdPath) error {
	id, err := fromID(jobID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCancelJobCommand(accountID(ctx), id)
	if err != nil {
		return err
	}
	if err = s.commands.CancelJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondJob(ctx, http.StatusOK, id)
}

// CompleteJob handles POST /api/v1/jobs/{jobId}/complete.
func (s *Server) CompleteJob(ctx echo.Context, jobID servers.JobIdPath) error {
	id, err := fromID(jobID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCompleteJobCommand(accountID(ctx), id)
	if err != nil {
		return err
	}
	if err = s.commands.CompleteJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondJob(ctx, http.StatusOK, id)
}

// GetWeekSchedule handles GET /api/v1/schedule.
func (s *Server) GetWeekSchedule(ctx echo.Context, params servers.GetWeekScheduleParams) error {
	return s.respondWeek(ctx, params.ExcludeCompleted != nil && *params.ExcludeCompleted)
}

// ReplaceWeekSchedule handles PUT /api/v1/schedule.
func (s *Server) ReplaceWeekSchedule(ctx echo.Context) error {
	var body servers.ReplaceWeekScheduleJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	week, err := fromWeekInput(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewReplaceWeekCommand(accountID(ctx), week)
	if err != nil {
		return err
	}
	if err = s.commands.ReplaceWeek.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondWeek(ctx, false)
}

// ListDayRoutes handles GET /api/v1/schedule/{weekday}/routes.
func (s *Server) ListDayRoutes(ctx echo.Context, weekday servers.WeekdayPath, params servers.ListDayRoutesParams) error {
	day, err := fromWeekday(weekday)
	if err != nil {
		return err
	}
	return s.respondDay(ctx, day, params.ExcludeCompleted != nil && *params.ExcludeCompleted)
}

// DeleteRoute handles DELETE /api/v1/schedule/{weekday}/routes/{index}.
func (s *Server) DeleteRoute(ctx echo.Context, weekday servers.WeekdayPath, index servers.IndexPath) error {
	day, err := fromWeekday(weekday)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteSlotCommand(accountID(ctx), day, index)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteSlot.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpsertRoute handles PUT /api/v1/schedule/{weekday}/routes/{index}.
func (s *Server) UpsertRoute(ctx echo.Context, weekday servers.WeekdayPath, index servers.IndexPath) error {
	day, err := fromWeekday(weekday)
	if err != nil {
		return err
	}
	var body servers.UpsertRouteJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return err
	}

	jobIDs, err := fromIDs(body.JobIds)
	if err != nil {
		return err
	}
	employeeID, err := kernel.UUIDFromPtr(body.EmployeeId)
	if err != nil {
		return err
	}
	crewID, err := kernel.UUIDFromPtr(body.CrewId)
	if err != nil {
		return err
	}
	var name string
	if body.Name != nil {
		name = *body.Name
	}

	cmd, err := commands.NewUpsertSlotCommand(accountID(ctx), day, index, name, jobIDs, employeeID, crewID)
	if err != nil {
		return err
	}
	if err = s.commands.UpsertSlot.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondDay(ctx, day, false)
}

// AssignRoute handles PUT /api/v1/schedule/{weekday}/routes/{index}/assignee.
// An empty body clears the assignee.
func (s *Server) AssignRoute(ctx echo.Context, weekday servers.WeekdayPath, index servers.IndexPath) error {
	day, err := fromWeekday(weekday)
	if err != nil {
		return err
	}
	var body servers.AssignRouteJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return err
	}
	employeeID, err := kernel.UUIDFromPtr(body.EmployeeId)
	if err != nil {
		return err
	}
	crewID, err := kernel.UUIDFromPtr(body.CrewId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignRouteCommand(accountID(ctx), day, index, employeeID, crewID)
	if err != nil {
		return err
	}
	if err = s.commands.AssignRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteRoute handles POST /api/v1/schedule/{weekday}/routes/{index}/complete.
func (s *Server) CompleteRoute(ctx echo.Context, weekday servers.WeekdayPath, index servers.IndexPath) error {
	day, err := fromWeekday(weekday)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCompleteRouteCommand(accountID(ctx), day, index)
	if err != nil {
		return err
	}
	if err = s.commands.CompleteRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RescheduleRoute handles POST /api/v1/schedule/{weekday}/routes/{index}/reschedule.
func (s *Server) RescheduleRoute(ctx echo.Context, weekday servers.WeekdayPath, index servers.IndexPath) error {
	day, err := fromWeekday(weekday)
	if err != nil {
		return err
	}
	var body servers.RescheduleRouteJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return err
	}
	target, err := fromWeekday(body.Weekday)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRescheduleSlotCommand(accountID(ctx), day, index, target)
	if err != nil {
		return err
	}
	if err = s.commands.RescheduleSlot.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondJob(ctx echo.Context, status int, jobID kernel.UUID) error {
	query, err := queries.NewGetJobQuery(accountID(ctx), jobID)
	if err != nil {
		return err
	}
	j, err := s.queries.GetJob.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toJob(j))
}

func (s *Server) respondWeek(ctx echo.Context, excludeCompleted bool) error {
	query, err := queries.NewGetWeekScheduleQuery(accountID(ctx), excludeCompleted)
	if err != nil {
		return err
	}
	week, err := s.queries.GetWeekSchedule.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toWeekSchedule(week))
}

func (s *Server) respondDay(ctx echo.Context, day kernel.Weekday, excludeCompleted bool) error {
	query, err := queries.NewListDayRoutesQuery(accountID(ctx), day, excludeCompleted)
	if err != nil {
		return err
	}
	routes, err := s.queries.ListDayRoutes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toRoutes(routes))
}
