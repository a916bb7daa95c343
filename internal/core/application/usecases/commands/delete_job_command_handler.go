package commands

import (
	"context"
)

// DeleteJobCommandHandler removes a job. The job leaves any slot in the same
// transaction, so no slot ever references a deleted job.
type DeleteJobCommandHandler struct {
	uowFactory UoWFactory
	retrier    Retrier
}

func NewDeleteJobCommandHandler(uowFactory UoWFactory, retrier Retrier) DeleteJobCommandHandler {
	return DeleteJobCommandHandler{
		uowFactory: uowFactory,
		retrier:    retrier,
	}
}

func (h DeleteJobCommandHandler) Handle(ctx context.Context, cmd DeleteJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inAccountTransaction(ctx, h.retrier, h.uowFactory, "deleteJob", cmd.AccountID(),
		func(ctx context.Context, uow UoW) error {
			jobRepo := uow.JobRepository()

			aggregate, err := jobRepo.Get(ctx, cmd.AccountID(), cmd.JobID())
			if err != nil {
				return err
			}

			if err = releaseFromSlot(ctx, uow.RouteRepository(), aggregate); err != nil {
				return err
			}

			return jobRepo.Delete(ctx, aggregate)
		})
}
