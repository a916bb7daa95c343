package commands_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fieldservice/internal/adapters/out/database"
	"fieldservice/internal/adapters/out/database/dbtest"
	"fieldservice/internal/adapters/out/database/jobrepo"
	"fieldservice/internal/adapters/out/database/routerepo"
	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/route"
	"fieldservice/internal/core/ports"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/retry"

	"github.com/stretchr/testify/suite"
)

type uowFactoryFunc func() commands.UoW

func (f uowFactoryFunc) Create() commands.UoW {
	return f()
}

type jobUoWFactoryFunc func() commands.JobUoW

func (f jobUoWFactoryFunc) Create() commands.JobUoW {
	return f()
}

// faultyUoW wraps a real unit of work and injects failures.
type faultyUoW struct {
	commands.UoW
	jobUpdates *atomic.Int32
	failUpdate int32
	lockErr    error
	lockDelay  time.Duration
}

func (u faultyUoW) LockAccount(ctx context.Context, accountID kernel.UUID) error {
	if u.lockDelay > 0 {
		select {
		case <-time.After(u.lockDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if u.lockErr != nil {
		return u.lockErr
	}
	return u.UoW.LockAccount(ctx, accountID)
}

func (u faultyUoW) JobRepository() ports.JobRepository {
	return faultyJobRepository{JobRepository: u.UoW.JobRepository(), uow: u}
}

type faultyJobRepository struct {
	ports.JobRepository
	uow faultyUoW
}

func (r faultyJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if r.uow.jobUpdates != nil && r.uow.jobUpdates.Add(1) == r.uow.failUpdate {
		return errors.New("injected failure")
	}
	return r.JobRepository.Update(ctx, aggregate)
}

type recordingObserver struct {
	mu   sync.Mutex
	jobs []kernel.UUID
}

func (o *recordingObserver) JobsCompleted(_ context.Context, _ kernel.UUID, jobs []*job.Job) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, j := range jobs {
		o.jobs = append(o.jobs, j.ID())
	}
}

// CoordinatorTestSuite drives the command handlers against a SQLite database.
type CoordinatorTestSuite struct {
	suite.Suite
	factory   *database.GormUnitOfWorkFactory
	jobs      ports.JobReader
	routes    ports.RouteReader
	retrier   *retry.Policy
	observer  *recordingObserver
	accountID kernel.UUID
	now       time.Time
}

func TestCoordinator(t *testing.T) {
	suite.Run(t, new(CoordinatorTestSuite))
}

func (s *CoordinatorTestSuite) SetupTest() {
	db := dbtest.SQLite(s.T())
	s.factory = database.NewGormUnitOfWorkFactory(db)
	s.jobs = jobrepo.NewGormJobRepository(db, nil)
	s.routes = routerepo.NewGormRouteRepository(db, nil)
	s.retrier = retry.NewPolicy(retry.Config{
		MaxAttempts:    5,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		Timeout:        10 * time.Second,
	}, nil)
	s.observer = &recordingObserver{}
	s.accountID = kernel.NewUUID()
	s.now = time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
}

func (s *CoordinatorTestSuite) uows() commands.UoWFactory {
	return uowFactoryFunc(func() commands.UoW { return s.factory.Create() })
}

func (s *CoordinatorTestSuite) clock() ports.Clock {
	return ports.ClockFunc(func() time.Time { return s.now })
}

func (s *CoordinatorTestSuite) createJob(title string, pattern job.Pattern) kernel.UUID {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateJobCommand(s.accountID, id, job.Details{Title: title}, pattern != job.NoPattern, pattern)
	s.Require().NoError(err)

	handler := commands.NewCreateJobCommandHandler(
		jobUoWFactoryFunc(func() commands.JobUoW { return s.factory.Create() }),
		s.retrier,
	)
	s.Require().NoError(handler.Handle(context.Background(), cmd))
	return id
}

func (s *CoordinatorTestSuite) upsert(weekday kernel.Weekday, index int, jobIDs ...kernel.UUID) error {
	cmd, err := commands.NewUpsertSlotCommand(s.accountID, weekday, index, "", jobIDs, nil, nil)
	s.Require().NoError(err)
	return commands.NewUpsertSlotCommandHandler(s.uows(), s.retrier).Handle(context.Background(), cmd)
}

func (s *CoordinatorTestSuite) replaceWeek(uows commands.UoWFactory, week map[kernel.Weekday][]commands.WeekSlot) error {
	cmd, err := commands.NewReplaceWeekCommand(s.accountID, week)
	if err != nil {
		return err
	}
	return commands.NewReplaceWeekCommandHandler(uows, s.retrier).Handle(context.Background(), cmd)
}

func (s *CoordinatorTestSuite) job(id kernel.UUID) *job.Job {
	j, err := s.jobs.Get(context.Background(), s.accountID, id)
	s.Require().NoError(err)
	return j
}

func (s *CoordinatorTestSuite) day(weekday kernel.Weekday) []*route.Route {
	slots, err := s.routes.ListByDay(context.Background(), s.accountID, weekday)
	s.Require().NoError(err)
	return slots
}

func (s *CoordinatorTestSuite) requireDense(weekday kernel.Weekday) {
	for i, slot := range s.day(weekday) {
		s.Require().Equal(i, slot.Index(), "%s slots must be indexed 0..n-1", weekday)
	}
}

func (s *CoordinatorTestSuite) TestDeleteSlot_CompactsFollowingSlots() {
	j1, j2, j3 := s.createJob("J1", job.NoPattern), s.createJob("J2", job.NoPattern), s.createJob("J3", job.NoPattern)
	s.Require().NoError(s.upsert(kernel.Monday, 0, j1, j2))
	s.Require().NoError(s.upsert(kernel.Monday, 1, j3))

	cmd, err := commands.NewDeleteSlotCommand(s.accountID, kernel.Monday, 0)
	s.Require().NoError(err)
	s.Require().NoError(commands.NewDeleteSlotCommandHandler(s.uows(), s.retrier).Handle(context.Background(), cmd))

	monday := s.day(kernel.Monday)
	s.Require().Len(monday, 1)
	s.Equal(0, monday[0].Index())
	s.Equal([]kernel.UUID{j3}, monday[0].JobIDs())
	s.Nil(s.job(j1).ScheduledDay())
	s.Nil(s.job(j2).ScheduledDay())
	s.Equal(kernel.Monday, *s.job(j3).ScheduledDay())

	err = commands.NewDeleteSlotCommandHandler(s.uows(), s.retrier).Handle(context.Background(), cmd)
	s.NoError(err, "slot 0 exists again after compaction")
	err = commands.NewDeleteSlotCommandHandler(s.uows(), s.retrier).Handle(context.Background(), cmd)
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *CoordinatorTestSuite) TestDeleteSlot_KeepsChosenNames() {
	for index, name := range []string{"North", "Route 2", ""} {
		cmd, err := commands.NewUpsertSlotCommand(s.accountID, kernel.Monday, index, name, nil, nil, nil)
		s.Require().NoError(err)
		s.Require().NoError(commands.NewUpsertSlotCommandHandler(s.uows(), s.retrier).Handle(context.Background(), cmd))
	}

	cmd, err := commands.NewDeleteSlotCommand(s.accountID, kernel.Monday, 0)
	s.Require().NoError(err)
	s.Require().NoError(commands.NewDeleteSlotCommandHandler(s.uows(), s.retrier).Handle(context.Background(), cmd))

	monday := s.day(kernel.Monday)
	s.Require().Len(monday, 2)
	s.Equal("Route 2", monday[0].Name(), "a chosen name is never rewritten")
	s.Equal("Route 2", monday[1].Name(), "a defaulted name follows its index")
	s.True(monday[1].NameIsDefault())
	s.requireDense(kernel.Monday)
}

func (s *CoordinatorTestSuite) TestCompleteRoute_CompletesJobsAndEmptiesSlot() {
	a := s.createJob("A", job.NoPattern)
	b := s.createJob("B", job.Weekly)
	s.Require().NoError(s.upsert(kernel.Wednesday, 0, a, b))

	cmd, err := commands.NewCompleteRouteCommand(s.accountID, kernel.Wednesday, 0)
	s.Require().NoError(err)
	handler := commands.NewCompleteRouteCommandHandler(s.uows(), s.retrier, s.clock(), s.observer)
	s.Require().NoError(handler.Handle(context.Background(), cmd))

	slots := s.day(kernel.Wednesday)
	s.Require().Len(slots, 1, "the slot persists")
	s.Empty(slots[0].JobIDs())

	for _, id := range []kernel.UUID{a, b} {
		j := s.job(id)
		s.Equal(job.Completed, j.Status())
		s.Equal(1, j.CompletionCount())
		s.True(s.now.Equal(*j.LastServiceDate()))
		s.Nil(j.ScheduledDay())
	}
	s.Nil(s.job(a).Recurrence())
	s.Equal(job.Weekly, s.job(b).Pattern())
	s.ElementsMatch([]kernel.UUID{a, b}, s.observer.jobs)

	missing, err := commands.NewCompleteRouteCommand(s.accountID, kernel.Wednesday, 4)
	s.Require().NoError(err)
	s.ErrorIs(handler.Handle(context.Background(), missing), errs.ErrObjectNotFound)
}

func (s *CoordinatorTestSuite) TestReplaceWeek_ReplacesEverything() {
	j1, j2, j3, stale := s.createJob("J1", job.NoPattern), s.createJob("J2", job.NoPattern),
		s.createJob("J3", job.Weekly), s.createJob("Stale", job.NoPattern)
	s.Require().NoError(s.upsert(kernel.Friday, 0, stale))
	s.Require().NoError(s.upsert(kernel.Friday, 1))
	employeeID := kernel.NewUUID()

	err := s.replaceWeek(s.uows(), map[kernel.Weekday][]commands.WeekSlot{
		kernel.Monday:  {{Name: "North", JobIDs: []kernel.UUID{j2, j1}, EmployeeID: &employeeID}},
		kernel.Tuesday: {{}, {JobIDs: []kernel.UUID{j3}}},
	})
	s.Require().NoError(err)

	s.Empty(s.day(kernel.Friday))
	monday := s.day(kernel.Monday)
	s.Require().Len(monday, 1)
	s.Equal("North", monday[0].Name())
	s.Equal([]kernel.UUID{j2, j1}, monday[0].JobIDs())
	s.Equal(employeeID, *monday[0].Assignee().EmployeeID())

	tuesday := s.day(kernel.Tuesday)
	s.Require().Len(tuesday, 2)
	s.Equal("Route 1", tuesday[0].Name())
	s.Equal([]kernel.UUID{j3}, tuesday[1].JobIDs())

	s.Equal(kernel.Monday, *s.job(j1).ScheduledDay())
	s.Equal(job.Scheduled, s.job(j1).Status())
	s.Equal(kernel.Tuesday, *s.job(j3).ScheduledDay())
	s.Nil(s.job(stale).ScheduledDay())
}

func (s *CoordinatorTestSuite) snapshot() ([]*route.Route, map[kernel.UUID]*kernel.Weekday) {
	week, err := s.routes.ListWeek(context.Background(), s.accountID)
	s.Require().NoError(err)

	days := make(map[kernel.UUID]*kernel.Weekday)
	for j, err := range s.jobs.Find(context.Background(), s.accountID, ports.JobFilter{}) {
		s.Require().NoError(err)
		days[j.ID()] = j.ScheduledDay()
	}
	return week, days
}

func (s *CoordinatorTestSuite) requireUnchanged(beforeWeek []*route.Route, beforeDays map[kernel.UUID]*kernel.Weekday) {
	afterWeek, afterDays := s.snapshot()
	s.Require().Len(afterWeek, len(beforeWeek))
	for i := range beforeWeek {
		s.True(beforeWeek[i].ID().IsEqual(afterWeek[i].ID()))
		s.Equal(beforeWeek[i].JobIDs(), afterWeek[i].JobIDs())
		s.Equal(beforeWeek[i].Index(), afterWeek[i].Index())
	}
	s.Equal(beforeDays, afterDays)
}

func (s *CoordinatorTestSuite) TestReplaceWeek_InjectedFailureRollsBack() {
	j1, j2, j3 := s.createJob("J1", job.NoPattern), s.createJob("J2", job.NoPattern), s.createJob("J3", job.NoPattern)
	s.Require().NoError(s.upsert(kernel.Monday, 0, j1))
	s.Require().NoError(s.upsert(kernel.Monday, 1, j2))
	beforeWeek, beforeDays := s.snapshot()

	var updates atomic.Int32
	faulty := uowFactoryFunc(func() commands.UoW {
		return faultyUoW{UoW: s.factory.Create(), jobUpdates: &updates, failUpdate: 2}
	})

	err := s.replaceWeek(faulty, map[kernel.Weekday][]commands.WeekSlot{
		kernel.Thursday: {{JobIDs: []kernel.UUID{j3, j1}}},
	})

	s.Require().ErrorContains(err, "injected failure")
	s.requireUnchanged(beforeWeek, beforeDays)
}

func (s *CoordinatorTestSuite) TestReplaceWeek_RejectedInputChangesNothing() {
	j1, j4 := s.createJob("J1", job.NoPattern), s.createJob("J4", job.NoPattern)
	s.Require().NoError(s.upsert(kernel.Monday, 0, j1))
	beforeWeek, beforeDays := s.snapshot()

	err := s.replaceWeek(s.uows(), map[kernel.Weekday][]commands.WeekSlot{
		kernel.Tuesday: {{JobIDs: []kernel.UUID{j4}}, {JobIDs: []kernel.UUID{j4}}},
	})
	s.Equal(errs.KindValidation, errs.KindOf(err))
	s.requireUnchanged(beforeWeek, beforeDays)

	err = s.replaceWeek(s.uows(), map[kernel.Weekday][]commands.WeekSlot{
		kernel.Tuesday: {{JobIDs: []kernel.UUID{j4, kernel.NewUUID()}}},
	})
	s.ErrorIs(err, errs.ErrObjectNotFound)
	s.requireUnchanged(beforeWeek, beforeDays)
}

func (s *CoordinatorTestSuite) TestRescheduleSlot_AppendsAndCompacts() {
	ids := make([]kernel.UUID, 0, 4)
	for range 4 {
		ids = append(ids, s.createJob("Job", job.NoPattern))
	}
	s.Require().NoError(s.upsert(kernel.Monday, 0, ids[0]))
	s.Require().NoError(s.upsert(kernel.Monday, 1, ids[1]))
	s.Require().NoError(s.upsert(kernel.Monday, 2, ids[2]))
	s.Require().NoError(s.upsert(kernel.Tuesday, 0, ids[3]))

	handler := commands.NewRescheduleSlotCommandHandler(s.uows(), s.retrier)
	cmd, err := commands.NewRescheduleSlotCommand(s.accountID, kernel.Monday, 1, kernel.Tuesday)
	s.Require().NoError(err)
	s.Require().NoError(handler.Handle(context.Background(), cmd))

	monday := s.day(kernel.Monday)
	s.Require().Len(monday, 2)
	s.Equal([]kernel.UUID{ids[0]}, monday[0].JobIDs())
	s.Equal([]kernel.UUID{ids[2]}, monday[1].JobIDs())
	s.requireDense(kernel.Monday)

	tuesday := s.day(kernel.Tuesday)
	s.Require().Len(tuesday, 2)
	s.Equal([]kernel.UUID{ids[1]}, tuesday[1].JobIDs())
	s.Equal(kernel.Tuesday, *s.job(ids[1]).ScheduledDay())

	byID, err := commands.NewRescheduleSlotByIDCommand(s.accountID, tuesday[1].ID(), kernel.Tuesday)
	s.Require().NoError(err)
	s.Require().NoError(handler.Handle(context.Background(), byID))
	s.Len(s.day(kernel.Tuesday), 2, "same-day reschedule is a no-op")
}

func (s *CoordinatorTestSuite) TestUpsertSlot_ReplacesJobsAndGuardsPlacement() {
	a, b, c := s.createJob("A", job.NoPattern), s.createJob("B", job.NoPattern), s.createJob("C", job.NoPattern)
	s.Require().NoError(s.upsert(kernel.Monday, 0, a, b))

	s.Equal(errs.KindValidation, errs.KindOf(s.upsert(kernel.Monday, 2, c)), "index 2 would leave a gap")
	s.ErrorIs(s.upsert(kernel.Tuesday, 0, b), errs.ErrConflict)
	s.ErrorIs(s.upsert(kernel.Tuesday, 0, kernel.NewUUID()), errs.ErrObjectNotFound)
	s.Empty(s.day(kernel.Tuesday))

	s.Require().NoError(s.upsert(kernel.Monday, 0, c, a))
	monday := s.day(kernel.Monday)
	s.Require().Len(monday, 1)
	s.Equal([]kernel.UUID{c, a}, monday[0].JobIDs())
	s.Nil(s.job(b).ScheduledDay())
	s.Equal(kernel.Monday, *s.job(c).ScheduledDay())
}

func (s *CoordinatorTestSuite) TestAssignRoute_AndAccountScoping() {
	s.Require().NoError(s.upsert(kernel.Saturday, 0))
	crewID := kernel.NewUUID()

	cmd, err := commands.NewAssignRouteCommand(s.accountID, kernel.Saturday, 0, nil, &crewID)
	s.Require().NoError(err)
	handler := commands.NewAssignRouteCommandHandler(s.uows(), s.retrier)
	s.Require().NoError(handler.Handle(context.Background(), cmd))
	s.Equal(crewID, *s.day(kernel.Saturday)[0].Assignee().CrewID())

	foreign, err := commands.NewAssignRouteCommand(kernel.NewUUID(), kernel.Saturday, 0, nil, &crewID)
	s.Require().NoError(err)
	s.ErrorIs(handler.Handle(context.Background(), foreign), errs.ErrObjectNotFound)
}

func (s *CoordinatorTestSuite) TestJobLifecycle_LeavesSlots() {
	done, dropped, gone := s.createJob("Done", job.NoPattern), s.createJob("Dropped", job.Monthly), s.createJob("Gone", job.NoPattern)
	s.Require().NoError(s.upsert(kernel.Monday, 0, done, dropped, gone))
	ctx := context.Background()

	completeCmd, err := commands.NewCompleteJobCommand(s.accountID, done)
	s.Require().NoError(err)
	complete := commands.NewCompleteJobCommandHandler(s.uows(), s.retrier, s.clock(), s.observer)
	s.Require().NoError(complete.Handle(ctx, completeCmd))
	s.Equal(errs.KindValidation, errs.KindOf(complete.Handle(ctx, completeCmd)), "one-time jobs complete once")
	s.Equal([]kernel.UUID{done}, s.observer.jobs)

	cancelCmd, err := commands.NewCancelJobCommand(s.accountID, dropped)
	s.Require().NoError(err)
	s.Require().NoError(commands.NewCancelJobCommandHandler(s.uows(), s.retrier).Handle(ctx, cancelCmd))
	s.Equal(job.RecurringCanceled, s.job(dropped).RecurringStatus())

	deleteCmd, err := commands.NewDeleteJobCommand(s.accountID, gone)
	s.Require().NoError(err)
	s.Require().NoError(commands.NewDeleteJobCommandHandler(s.uows(), s.retrier).Handle(ctx, deleteCmd))
	_, err = s.jobs.Get(ctx, s.accountID, gone)
	s.ErrorIs(err, errs.ErrObjectNotFound)

	s.Empty(s.day(kernel.Monday)[0].JobIDs())
	ids, err := s.routes.ScheduledJobIDs(ctx, s.accountID)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *CoordinatorTestSuite) TestUpdateJob_RecurrenceRules() {
	ctx := context.Background()
	id := s.createJob("Lawn", job.Weekly)
	handler := commands.NewUpdateJobCommandHandler(s.uows(), s.retrier)

	off := false
	monthly := job.Monthly
	cmd, err := commands.NewUpdateJobCommand(s.accountID, id, job.Patch{IsRecurring: &off, Pattern: &monthly})
	s.Require().NoError(err)
	s.Require().NoError(handler.Handle(ctx, cmd))
	s.False(s.job(id).IsRecurring())
	s.Equal(job.NoPattern, s.job(id).Pattern(), "pattern is silently dropped")

	on := true
	cmd, err = commands.NewUpdateJobCommand(s.accountID, id, job.Patch{IsRecurring: &on})
	s.Require().NoError(err)
	s.Equal(errs.KindValidation, errs.KindOf(handler.Handle(ctx, cmd)))

	title := "Back lawn"
	cmd, err = commands.NewUpdateJobCommand(s.accountID, id, job.Patch{Title: &title, IsRecurring: &on, Pattern: &monthly})
	s.Require().NoError(err)
	s.Require().NoError(handler.Handle(ctx, cmd))
	s.Equal("Back lawn", s.job(id).Title())
	s.Equal(job.Monthly, s.job(id).Pattern())
	s.Equal(job.RecurringActive, s.job(id).RecurringStatus())
}

func (s *CoordinatorTestSuite) TestConcurrentEdits_KeepIndicesDense() {
	for i := range 6 {
		s.Require().NoError(s.upsert(kernel.Monday, i))
	}
	for i := range 2 {
		s.Require().NoError(s.upsert(kernel.Tuesday, i))
	}

	type outcome struct {
		moved bool
		err   error
	}
	var wg sync.WaitGroup
	results := make(chan outcome, 8)
	for i := range 4 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewDeleteSlotCommand(s.accountID, kernel.Monday, 0)
			if err == nil {
				err = commands.NewDeleteSlotCommandHandler(s.uows(), s.retrier).Handle(context.Background(), cmd)
			}
			results <- outcome{err: err}
		}()
		go func() {
			defer wg.Done()
			target := kernel.Wednesday
			if i%2 == 0 {
				target = kernel.Tuesday
			}
			cmd, err := commands.NewRescheduleSlotCommand(s.accountID, kernel.Monday, 0, target)
			if err == nil {
				err = commands.NewRescheduleSlotCommandHandler(s.uows(), s.retrier).Handle(context.Background(), cmd)
			}
			results <- outcome{moved: true, err: err}
		}()
	}
	wg.Wait()
	close(results)

	succeeded, moved := 0, 0
	for r := range results {
		if r.err != nil {
			s.ErrorIs(r.err, errs.ErrObjectNotFound, "only an emptied Monday may refuse an edit")
			continue
		}
		succeeded++
		if r.moved {
			moved++
		}
	}
	s.Equal(6, succeeded, "six Monday slots allow exactly six removals")

	for _, weekday := range []kernel.Weekday{kernel.Monday, kernel.Tuesday, kernel.Wednesday} {
		s.requireDense(weekday)
	}
	s.Empty(s.day(kernel.Monday))
	s.Len(append(s.day(kernel.Tuesday), s.day(kernel.Wednesday)...), 2+moved)
}

func (s *CoordinatorTestSuite) TestWriteConflicts_ExhaustRetries() {
	s.Require().NoError(s.upsert(kernel.Monday, 0))
	attempts := 0
	conflicting := uowFactoryFunc(func() commands.UoW {
		attempts++
		return faultyUoW{UoW: s.factory.Create(), lockErr: errs.NewWriteConflictError("route")}
	})

	cmd, err := commands.NewAssignRouteCommand(s.accountID, kernel.Monday, 0, nil, nil)
	s.Require().NoError(err)
	err = commands.NewAssignRouteCommandHandler(conflicting, s.retrier).Handle(context.Background(), cmd)

	var failure *errs.TransactionFailureError
	s.Require().ErrorAs(err, &failure)
	s.Equal(5, failure.Attempts)
	s.Equal(5, attempts)
	s.Equal(errs.KindTransactionFailure, errs.KindOf(err))
}

func (s *CoordinatorTestSuite) TestSlowTransaction_TimesOut() {
	s.Require().NoError(s.upsert(kernel.Monday, 0))
	slow := uowFactoryFunc(func() commands.UoW {
		return faultyUoW{UoW: s.factory.Create(), lockDelay: time.Second}
	})
	impatient := retry.NewPolicy(retry.Config{Timeout: 50 * time.Millisecond}, nil)

	cmd, err := commands.NewDeleteSlotCommand(s.accountID, kernel.Monday, 0)
	s.Require().NoError(err)
	err = commands.NewDeleteSlotCommandHandler(slow, impatient).Handle(context.Background(), cmd)

	s.Equal(errs.KindTransactionTimeout, errs.KindOf(err))
	s.Len(s.day(kernel.Monday), 1)
}
