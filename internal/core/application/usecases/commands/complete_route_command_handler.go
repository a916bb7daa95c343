package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/ports"
)

// CompleteRouteCommandHandler closes out a worked slot.
//
// Business rules:
//   - A missing slot is NotFound
//   - Every job of the slot is completed as by CompleteJob
//   - The slot stays, with an empty work sequence, ready for the next cycle
//
// Either all jobs are completed and the slot emptied, or nothing changes.
type CompleteRouteCommandHandler struct {
	uowFactory UoWFactory
	retrier    Retrier
	clock      ports.Clock
	observer   ports.CompletionObserver
}

func NewCompleteRouteCommandHandler(
	uowFactory UoWFactory,
	retrier Retrier,
	clock ports.Clock,
	observer ports.CompletionObserver,
) CompleteRouteCommandHandler {
	return CompleteRouteCommandHandler{
		uowFactory: uowFactory,
		retrier:    retrier,
		clock:      clock,
		observer:   observer,
	}
}

func (h CompleteRouteCommandHandler) Handle(ctx context.Context, cmd CompleteRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var completed []*job.Job
	err := inAccountTransaction(ctx, h.retrier, h.uowFactory, "completeRoute", cmd.AccountID(),
		func(ctx context.Context, uow UoW) error {
			routeRepo := uow.RouteRepository()
			jobRepo := uow.JobRepository()

			slot, err := routeRepo.Get(ctx, cmd.AccountID(), cmd.Weekday(), cmd.Index())
			if err != nil {
				return err
			}

			jobs, err := jobRepo.GetMany(ctx, cmd.AccountID(), slot.JobIDs())
			if err != nil {
				return err
			}

			now := h.clock.Now()
			for _, j := range jobs {
				if err = j.Complete(now); err != nil {
					return err
				}
			}

			slot.ClearJobs()
			if err = routeRepo.Update(ctx, slot); err != nil {
				return err
			}

			for _, j := range jobs {
				if err = jobRepo.Update(ctx, j); err != nil {
					return err
				}
			}

			completed = jobs
			return nil
		})
	if err != nil {
		return err
	}

	if h.observer != nil && len(completed) > 0 {
		h.observer.JobsCompleted(ctx, cmd.AccountID(), completed)
	}
	return nil
}
