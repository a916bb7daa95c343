// Package database provides the GORM-based Unit of Work of the scheduling
// core, the per-account exclusive section and the connection and schema setup
// for PostgreSQL and SQLite.
//
// Usage Patterns:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.LockAccount(ctx, accountID); err != nil {
//	    return err
//	}
//
//	// Perform repository operations on uow.RouteRepository() and uow.JobRepository()
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - LockAccount serializes commands of one account that rewrite slot indices
package database

import (
	"context"

	"fieldservice/internal/adapters/out/database/dberr"
	"fieldservice/internal/adapters/out/database/jobrepo"
	"fieldservice/internal/adapters/out/database/routerepo"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate remembers the version an aggregate had before this unit
// of work wrote it, so a rollback can put the in-memory state back.
type trackedAggregate struct {
	Aggregate       kernel.Versioned
	PreviousVersion int
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions for business operations.
// Repositories obtained from it run inside the current transaction once
// Begin was called, and on the plain connection otherwise.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return dberr.Translate(tx.Error, "transaction")
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.restoreVersions()
		return dberr.Translate(err, "transaction")
	}

	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards all changes made within the current transaction and
// puts the versions of tracked aggregates back to what they were loaded with.
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.restoreVersions()
	return err
}

// LockAccount takes the per-account exclusive section. On PostgreSQL this is a
// transaction scoped advisory lock released by commit or rollback. SQLite
// runs on a single connection, so transactions are already serialized.
func (uow *GormUnitOfWork) LockAccount(ctx context.Context, accountID kernel.UUID) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	if err := accountID.Validate(); err != nil {
		return err
	}

	if uow.tx.Dialector.Name() != DriverPostgres {
		return nil
	}
	err := uow.tx.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", accountID.LockKey()).Error
	return dberr.Translate(err, "account lock")
}

// JobRepository provides access to job persistence within the unit of work.
func (uow *GormUnitOfWork) JobRepository() ports.JobRepository {
	return jobrepo.NewGormJobRepository(uow.conn(), uow)
}

// RouteRepository provides access to route slot persistence within the unit of work.
func (uow *GormUnitOfWork) RouteRepository() ports.RouteRepository {
	return routerepo.NewGormRouteRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work
// together with the version it had before the write.
func (uow *GormUnitOfWork) TrackAggregate(aggregate kernel.Versioned, previousVersion int) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		Aggregate:       aggregate,
		PreviousVersion: previousVersion,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// restoreVersions walks the tracked writes backwards so an aggregate written
// twice ends up with its original version.
func (uow *GormUnitOfWork) restoreVersions() {
	for i := len(uow.trackedAggregates) - 1; i >= 0; i-- {
		tracked := uow.trackedAggregates[i]
		tracked.Aggregate.SyncVersion(tracked.PreviousVersion)
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
}
