package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/ports"
)

// CompleteJobCommandHandler completes a single job.
//
// Business rules:
//   - Status becomes Completed, the service date is now and the count grows by one
//   - One-time jobs can be completed once; canceled jobs cannot be completed
//   - The job leaves its slot and returns to the pool (recurring jobs become
//     due again once their cutoff elapsed)
//
// The completion observer is told only after the transaction committed.
type CompleteJobCommandHandler struct {
	uowFactory UoWFactory
	retrier    Retrier
	clock      ports.Clock
	observer   ports.CompletionObserver
}

func NewCompleteJobCommandHandler(
	uowFactory UoWFactory,
	retrier Retrier,
	clock ports.Clock,
	observer ports.CompletionObserver,
) CompleteJobCommandHandler {
	return CompleteJobCommandHandler{
		uowFactory: uowFactory,
		retrier:    retrier,
		clock:      clock,
		observer:   observer,
	}
}

func (h CompleteJobCommandHandler) Handle(ctx context.Context, cmd CompleteJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var completed *job.Job
	err := inAccountTransaction(ctx, h.retrier, h.uowFactory, "completeJob", cmd.AccountID(),
		func(ctx context.Context, uow UoW) error {
			jobRepo := uow.JobRepository()

			aggregate, err := jobRepo.Get(ctx, cmd.AccountID(), cmd.JobID())
			if err != nil {
				return err
			}

			if err = aggregate.Complete(h.clock.Now()); err != nil {
				return err
			}

			if err = releaseFromSlot(ctx, uow.RouteRepository(), aggregate); err != nil {
				return err
			}

			if err = jobRepo.Update(ctx, aggregate); err != nil {
				return err
			}

			completed = aggregate
			return nil
		})
	if err != nil {
		return err
	}

	if h.observer != nil {
		h.observer.JobsCompleted(ctx, cmd.AccountID(), []*job.Job{completed})
	}
	return nil
}
