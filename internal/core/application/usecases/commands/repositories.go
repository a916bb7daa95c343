// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, a retried transaction
// under the account lock, and persistence through a unit of work.
package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AccountLocker takes the per-account exclusive section of a transaction.
	AccountLocker interface {
		LockAccount(ctx context.Context, accountID kernel.UUID) error
	}

	// JobRepoFactory provides access to job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// RouteRepoFactory provides access to route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// JobUoW manages transactions for job-only operations.
	// Used when commands cannot touch any slot, such as job creation.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// UoW manages transactions across jobs and route slots.
	// Used for commands that coordinate changes between both aggregate types.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.LockAccount(ctx, accountID)
	//   jobRepo := uow.JobRepository()
	//   routeRepo := uow.RouteRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		AccountLocker
		JobRepoFactory
		RouteRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}

	// Retrier runs one transactional attempt function until it succeeds or
	// the write conflict policy gives up.
	Retrier interface {
		Do(ctx context.Context, operation string, fn func(ctx context.Context) error) error
	}
)

// inAccountTransaction runs work in a fresh unit of work per attempt: Begin,
// lock the account, work, Commit. Aggregates must be loaded inside work so a
// retried attempt sees the state that beat it.
func inAccountTransaction(
	ctx context.Context,
	retrier Retrier,
	uowFactory UoWFactory,
	operation string,
	accountID kernel.UUID,
	work func(ctx context.Context, uow UoW) error,
) error {
	return retrier.Do(ctx, operation, func(ctx context.Context) error {
		uow := uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		if err := uow.LockAccount(ctx, accountID); err != nil {
			return err
		}

		if err := work(ctx, uow); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}
