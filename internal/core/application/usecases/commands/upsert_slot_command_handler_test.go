package commands_test

import (
	"testing"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/route"
	"fieldservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingJob(t *testing.T, accountID kernel.UUID) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), accountID, job.Details{Title: "Visit"}, false, job.NoPattern)
	require.NoError(t, err)
	return j
}

func TestUpsertSlotCommandHandler_Handle_CreatesSlot(t *testing.T) {
	ctx := t.Context()
	accountID := kernel.NewUUID()
	employeeID := kernel.NewUUID()
	j := pendingJob(t, accountID)

	cmd, err := commands.NewUpsertSlotCommand(accountID, kernel.Tuesday, 0, "", []kernel.UUID{j.ID()}, &employeeID, nil)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	var added *route.Route
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LockAccount", ctx, accountID).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		routeRepo.On("ListByDay", ctx, accountID, kernel.Tuesday).Return([]*route.Route{}, nil).Once(),
		jobRepo.On("GetMany", ctx, accountID, []kernel.UUID{j.ID()}).Return([]*job.Job{j}, nil).Once(),
		routeRepo.On("FindByJob", ctx, accountID, j.ID()).Return(nil, nil).Once(),
		routeRepo.On("Add", ctx, mock.AnythingOfType("*route.Route")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*route.Route) }).
			Return(nil).Once(),
		jobRepo.On("Update", ctx, j).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpsertSlotCommandHandler(factory, onceRetrier{})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, "Route 1", added.Name())
	assert.Equal(t, employeeID, *added.Assignee().EmployeeID())
	assert.Equal(t, job.Scheduled, j.Status())
	assert.Equal(t, kernel.Tuesday, *j.ScheduledDay())
	routeRepo.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpsertSlotCommandHandler_Handle_IndexLeavesGap(t *testing.T) {
	ctx := t.Context()
	accountID := kernel.NewUUID()
	cmd, err := commands.NewUpsertSlotCommand(accountID, kernel.Tuesday, 2, "", nil, nil, nil)
	require.NoError(t, err)

	existing, err := route.NewRoute(kernel.NewUUID(), accountID, kernel.Tuesday, 0, "", nil, route.NoAssignee())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LockAccount", ctx, accountID).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		routeRepo.On("ListByDay", ctx, accountID, kernel.Tuesday).Return([]*route.Route{existing}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpsertSlotCommandHandler(factory, onceRetrier{})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	routeRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestUpsertSlotCommandHandler_Handle_JobInAnotherSlot(t *testing.T) {
	ctx := t.Context()
	accountID := kernel.NewUUID()
	j := scheduledJob(t, accountID, false, kernel.Monday)
	holder, err := route.NewRoute(kernel.NewUUID(), accountID, kernel.Monday, 0, "", []kernel.UUID{j.ID()}, route.NoAssignee())
	require.NoError(t, err)

	cmd, err := commands.NewUpsertSlotCommand(accountID, kernel.Tuesday, 0, "", []kernel.UUID{j.ID()}, nil, nil)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LockAccount", ctx, accountID).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		routeRepo.On("ListByDay", ctx, accountID, kernel.Tuesday).Return([]*route.Route{}, nil).Once(),
		jobRepo.On("GetMany", ctx, accountID, []kernel.UUID{j.ID()}).Return([]*job.Job{j}, nil).Once(),
		routeRepo.On("FindByJob", ctx, accountID, j.ID()).Return(holder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpsertSlotCommandHandler(factory, onceRetrier{})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNewUpsertSlotCommand_EmployeeAndCrew_Conflict(t *testing.T) {
	employeeID, crewID := kernel.NewUUID(), kernel.NewUUID()

	_, err := commands.NewUpsertSlotCommand(kernel.NewUUID(), kernel.Monday, 0, "", nil, &employeeID, &crewID)

	require.ErrorIs(t, err, errs.ErrConflict)
}
