package commands

import (
	"context"
)

// CancelJobCommandHandler cancels a job and drops it from its slot.
type CancelJobCommandHandler struct {
	uowFactory UoWFactory
	retrier    Retrier
}

func NewCancelJobCommandHandler(uowFactory UoWFactory, retrier Retrier) CancelJobCommandHandler {
	return CancelJobCommandHandler{
		uowFactory: uowFactory,
		retrier:    retrier,
	}
}

func (h CancelJobCommandHandler) Handle(ctx context.Context, cmd CancelJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inAccountTransaction(ctx, h.retrier, h.uowFactory, "cancelJob", cmd.AccountID(),
		func(ctx context.Context, uow UoW) error {
			jobRepo := uow.JobRepository()

			aggregate, err := jobRepo.Get(ctx, cmd.AccountID(), cmd.JobID())
			if err != nil {
				return err
			}

			if err = aggregate.Cancel(); err != nil {
				return err
			}

			if err = releaseFromSlot(ctx, uow.RouteRepository(), aggregate); err != nil {
				return err
			}

			return jobRepo.Update(ctx, aggregate)
		})
}
