package commands_test

import (
	"testing"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteSlotCommandHandler_Handle_CompactsAndReleasesJobs(t *testing.T) {
	ctx := t.Context()
	accountID := kernel.NewUUID()
	j1 := scheduledJob(t, accountID, false, kernel.Monday)
	j2 := scheduledJob(t, accountID, false, kernel.Monday)
	j3 := scheduledJob(t, accountID, false, kernel.Monday)

	newSlot := func(index int, ids ...kernel.UUID) *route.Route {
		r, err := route.NewRoute(kernel.NewUUID(), accountID, kernel.Monday, index, "", ids, route.NoAssignee())
		require.NoError(t, err)
		return r
	}
	first := newSlot(0, j1.ID(), j2.ID())
	second := newSlot(1, j3.ID())
	third := newSlot(2)
	// target is first as loaded by Get: same slot, another instance.
	target := mustRestore(t, first)

	cmd, err := commands.NewDeleteSlotCommand(accountID, kernel.Monday, 0)
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
		routeRepo.On("Get", ctx, accountID, kernel.Monday, 0).Return(target, nil).Once(),
		routeRepo.On("ListByDay", ctx, accountID, kernel.Monday).
			Return([]*route.Route{first, second, third}, nil).Once(),
		routeRepo.On("Delete", ctx, target).Return(nil).Once(),
		routeRepo.On("Update", ctx, second).Return(nil).Once(),
		routeRepo.On("Update", ctx, third).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", ctx, accountID, j1.ID()).Return(j1, nil).Once(),
		jobRepo.On("Update", ctx, j1).Return(nil).Once(),
		jobRepo.On("Get", ctx, accountID, j2.ID()).Return(j2, nil).Once(),
		jobRepo.On("Update", ctx, j2).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewDeleteSlotCommandHandler(factory, onceRetrier{})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, second.Index())
	assert.Equal(t, []kernel.UUID{j3.ID()}, second.JobIDs())
	assert.Equal(t, "Route 1", second.Name())
	assert.Equal(t, 1, third.Index())
	assert.Nil(t, j1.ScheduledDay())
	assert.Nil(t, j2.ScheduledDay())
	assert.Equal(t, kernel.Monday, *j3.ScheduledDay())
	assert.Equal(t, job.Scheduled, j1.Status())
	routeRepo.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func mustRestore(t *testing.T, r *route.Route) *route.Route {
	t.Helper()
	restored, err := route.RestoreRoute(r.ID(), r.AccountID(), r.Weekday(), r.Index(), r.Name(),
		r.JobIDs(), r.Assignee(), r.Version())
	require.NoError(t, err)
	return restored
}
