package commands_test

import (
	"context"
	"iter"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/route"
	"fieldservice/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Get(ctx context.Context, accountID, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetMany(ctx context.Context, accountID kernel.UUID, ids []kernel.UUID) ([]*job.Job, error) {
	args := m.Called(ctx, accountID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) Find(ctx context.Context, accountID kernel.UUID, filter ports.JobFilter) iter.Seq2[*job.Job, error] {
	args := m.Called(ctx, accountID, filter)
	return args.Get(0).(iter.Seq2[*job.Job, error])
}

func (m *MockJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockJobRepository) Delete(ctx context.Context, aggregate *job.Job) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockJobRepository) ListScheduled(ctx context.Context, accountID kernel.UUID) ([]*job.Job, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Get(
	ctx context.Context,
	accountID kernel.UUID,
	weekday kernel.Weekday,
	index int,
) (*route.Route, error) {
	args := m.Called(ctx, accountID, weekday, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) GetByID(ctx context.Context, accountID, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) ListByDay(
	ctx context.Context,
	accountID kernel.UUID,
	weekday kernel.Weekday,
) ([]*route.Route, error) {
	args := m.Called(ctx, accountID, weekday)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*route.Route), args.Error(1)
}

func (m *MockRouteRepository) ListWeek(ctx context.Context, accountID kernel.UUID) ([]*route.Route, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*route.Route), args.Error(1)
}

func (m *MockRouteRepository) ScheduledJobIDs(ctx context.Context, accountID kernel.UUID) ([]kernel.UUID, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

func (m *MockRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockRouteRepository) Delete(ctx context.Context, aggregate *route.Route) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockRouteRepository) DeleteAll(ctx context.Context, accountID kernel.UUID) error {
	return m.Called(ctx, accountID).Error(0)
}

func (m *MockRouteRepository) FindByJob(ctx context.Context, accountID, jobID kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, accountID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) LockAccount(ctx context.Context, accountID kernel.UUID) error {
	return m.Called(ctx, accountID).Error(0)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockCompletionObserver struct{ mock.Mock }

func (m *MockCompletionObserver) JobsCompleted(ctx context.Context, accountID kernel.UUID, jobs []*job.Job) {
	m.Called(ctx, accountID, jobs)
}

// onceRetrier runs a single attempt, so mock expectations see the caller's context.
type onceRetrier struct{}

func (onceRetrier) Do(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
