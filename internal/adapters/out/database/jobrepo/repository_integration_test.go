package jobrepo_test

import (
	"context"
	"testing"
	"time"

	"fieldservice/internal/adapters/out/database"
	"fieldservice/internal/adapters/out/database/dbtest"
	"fieldservice/internal/adapters/out/database/jobrepo"
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/ports"
	"fieldservice/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(aggregate kernel.Versioned, previousVersion int) {
	m.Called(aggregate, previousVersion)
}

// JobRepositoryTestSuite runs the same repository contract against SQLite
// and, through testcontainers, against PostgreSQL.
type JobRepositoryTestSuite struct {
	suite.Suite
	usePostgres bool
	container   *postgres.PostgresContainer
	db          *gorm.DB
	repository  *jobrepo.GormJobRepository
	tracker     *MockAggregateTracker
	accountID   kernel.UUID
}

func TestJobRepository_SQLite(t *testing.T) {
	suite.Run(t, new(JobRepositoryTestSuite))
}

func TestJobRepository_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	suite.Run(t, &JobRepositoryTestSuite{usePostgres: true})
}

func (s *JobRepositoryTestSuite) SetupSuite() {
	if !s.usePostgres {
		s.db = dbtest.SQLite(s.T())
		return
	}

	ctx := context.Background()
	container, dsn, err := dbtest.PostgresContainer(ctx)
	s.Require().NoError(err)
	s.container = container

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(ctx, db))
	s.db = db
}

func (s *JobRepositoryTestSuite) SetupTest() {
	s.Require().NoError(dbtest.Truncate(s.db))

	s.tracker = new(MockAggregateTracker)
	s.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	s.repository = jobrepo.NewGormJobRepository(s.db, s.tracker)
	s.accountID = kernel.NewUUID()
}

func (s *JobRepositoryTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *JobRepositoryTestSuite) newJob(title string, recurring bool) *job.Job {
	pattern := job.NoPattern
	if recurring {
		pattern = job.Weekly
	}
	j, err := job.NewJob(kernel.NewUUID(), s.accountID, job.Details{Title: title}, recurring, pattern)
	s.Require().NoError(err)
	return j
}

func (s *JobRepositoryTestSuite) TestAdd_Get_RoundTrip() {
	ctx := context.Background()
	customer := kernel.NewUUID()
	j, err := job.NewJob(kernel.NewUUID(), s.accountID, job.Details{
		Title:      "Front lawn",
		Address:    "1 Main St",
		CustomerID: &customer,
	}, true, job.Biweekly)
	s.Require().NoError(err)

	s.Require().NoError(s.repository.Add(ctx, j))
	s.Equal(1, j.Version())
	s.tracker.AssertCalled(s.T(), "TrackAggregate", j, 0)

	got, err := s.repository.Get(ctx, s.accountID, j.ID())
	s.Require().NoError(err)
	s.True(got.IsEqual(j))
	s.Equal("Front lawn", got.Title())
	s.Equal("1 Main St", got.Address())
	s.True(got.CustomerID().IsEqual(customer))
	s.Equal(job.Pending, got.Status())
	s.Equal(job.Biweekly, got.Pattern())
	s.Equal(job.RecurringActive, got.RecurringStatus())
	s.Nil(got.ScheduledDay())
	s.Equal(1, got.Version())
}

func (s *JobRepositoryTestSuite) TestGet_OtherAccount_NotFound() {
	ctx := context.Background()
	j := s.newJob("Hedges", false)
	s.Require().NoError(s.repository.Add(ctx, j))

	_, err := s.repository.Get(ctx, kernel.NewUUID(), j.ID())

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *JobRepositoryTestSuite) TestUpdate_PersistsClearedFields() {
	ctx := context.Background()
	j := s.newJob("Lawn", false)
	s.Require().NoError(j.ScheduleOn(kernel.Monday))
	s.Require().NoError(s.repository.Add(ctx, j))

	s.Require().NoError(j.Complete(time.Now()))
	s.Require().NoError(s.repository.Update(ctx, j))

	got, err := s.repository.Get(ctx, s.accountID, j.ID())
	s.Require().NoError(err)
	s.Nil(got.ScheduledDay(), "nil weekday must overwrite the stored one")
	s.Equal(job.Completed, got.Status())
	s.Equal(1, got.CompletionCount())
	s.NotNil(got.LastServiceDate())
	s.Equal(2, got.Version())
}

func (s *JobRepositoryTestSuite) TestUpdate_StaleVersion_WriteConflict() {
	ctx := context.Background()
	j := s.newJob("Lawn", false)
	s.Require().NoError(s.repository.Add(ctx, j))

	first, err := s.repository.Get(ctx, s.accountID, j.ID())
	s.Require().NoError(err)
	second, err := s.repository.Get(ctx, s.accountID, j.ID())
	s.Require().NoError(err)

	s.Require().NoError(first.ScheduleOn(kernel.Monday))
	s.Require().NoError(s.repository.Update(ctx, first))

	s.Require().NoError(second.ScheduleOn(kernel.Tuesday))
	err = s.repository.Update(ctx, second)

	s.True(errs.IsWriteConflict(err))
}

func (s *JobRepositoryTestSuite) TestUpdate_Missing_NotFound() {
	j := s.newJob("Ghost", false)

	err := s.repository.Update(context.Background(), j)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *JobRepositoryTestSuite) TestDelete() {
	ctx := context.Background()
	j := s.newJob("Lawn", false)
	s.Require().NoError(s.repository.Add(ctx, j))

	s.Require().NoError(s.repository.Delete(ctx, j))

	_, err := s.repository.Get(ctx, s.accountID, j.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.Require().ErrorIs(s.repository.Delete(ctx, j), errs.ErrObjectNotFound)
}

func (s *JobRepositoryTestSuite) TestGetMany_KeepsOrderAndFailsOnMissing() {
	ctx := context.Background()
	a, b := s.newJob("A", false), s.newJob("B", true)
	s.Require().NoError(s.repository.Add(ctx, a))
	s.Require().NoError(s.repository.Add(ctx, b))

	got, err := s.repository.GetMany(ctx, s.accountID, []kernel.UUID{b.ID(), a.ID()})
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.True(got[0].IsEqual(b))
	s.True(got[1].IsEqual(a))

	_, err = s.repository.GetMany(ctx, s.accountID, []kernel.UUID{a.ID(), kernel.NewUUID()})
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)

	empty, err := s.repository.GetMany(ctx, s.accountID, nil)
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *JobRepositoryTestSuite) TestFind_FiltersAndRestarts() {
	ctx := context.Background()
	monday := s.newJob("Monday job", false)
	s.Require().NoError(monday.ScheduleOn(kernel.Monday))
	pool := s.newJob("Pool job", true)
	done := s.newJob("Done job", false)
	s.Require().NoError(done.Complete(time.Now()))
	for _, j := range []*job.Job{monday, pool, done} {
		s.Require().NoError(s.repository.Add(ctx, j))
	}
	s.Require().NoError(s.repository.Add(ctx, mustForeignJob(s.T())))

	collect := func(filter ports.JobFilter) []string {
		var titles []string
		for j, err := range s.repository.Find(ctx, s.accountID, filter) {
			s.Require().NoError(err)
			titles = append(titles, j.Title())
		}
		return titles
	}

	s.ElementsMatch([]string{"Monday job", "Pool job", "Done job"}, collect(ports.JobFilter{}))
	s.Equal([]string{"Monday job"}, collect(ports.JobFilter{ScheduledDay: kernel.Monday.Ptr()}))
	s.ElementsMatch([]string{"Pool job", "Done job"}, collect(ports.JobFilter{UnscheduledOnly: true}))
	s.Equal([]string{"Done job"}, collect(ports.JobFilter{Statuses: []job.Status{job.Completed}}))

	seq := s.repository.Find(ctx, s.accountID, ports.JobFilter{})
	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	s.Equal(3, count())
	s.Equal(3, count(), "sequence must be restartable")
}

func (s *JobRepositoryTestSuite) TestFind_Pages() {
	ctx := context.Background()
	for range 130 {
		s.Require().NoError(s.repository.Add(ctx, s.newJob("Bulk", false)))
	}

	seen := make(map[kernel.UUID]struct{})
	for j, err := range s.repository.Find(ctx, s.accountID, ports.JobFilter{}) {
		s.Require().NoError(err)
		seen[j.ID()] = struct{}{}
	}
	s.Len(seen, 130)

	taken := 0
	for range s.repository.Find(ctx, s.accountID, ports.JobFilter{}) {
		taken++
		if taken == 5 {
			break
		}
	}
	s.Equal(5, taken)
}

func (s *JobRepositoryTestSuite) TestListScheduled() {
	ctx := context.Background()
	scheduled := s.newJob("Scheduled", false)
	s.Require().NoError(scheduled.ScheduleOn(kernel.Friday))
	s.Require().NoError(s.repository.Add(ctx, scheduled))
	s.Require().NoError(s.repository.Add(ctx, s.newJob("Pool", false)))

	got, err := s.repository.ListScheduled(ctx, s.accountID)

	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.True(got[0].IsEqual(scheduled))
}

func mustForeignJob(t *testing.T) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), kernel.NewUUID(), job.Details{Title: "Foreign"}, false, job.NoPattern)
	if err != nil {
		t.Fatal(err)
	}
	return j
}
