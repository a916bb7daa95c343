package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/job"
)

// UpdateJobCommandHandler applies field patches to a job.
//
// Business rules:
//   - Turning recurrence off clears any supplied pattern
//   - Turning recurrence on requires a pattern
//   - Canceling the recurrence through a patch drops the job from its slot
type UpdateJobCommandHandler struct {
	uowFactory UoWFactory
	retrier    Retrier
}

func NewUpdateJobCommandHandler(uowFactory UoWFactory, retrier Retrier) UpdateJobCommandHandler {
	return UpdateJobCommandHandler{
		uowFactory: uowFactory,
		retrier:    retrier,
	}
}

// Handle processes the update command.
func (h UpdateJobCommandHandler) Handle(ctx context.Context, cmd UpdateJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inAccountTransaction(ctx, h.retrier, h.uowFactory, "updateJob", cmd.AccountID(),
		func(ctx context.Context, uow UoW) error {
			jobRepo := uow.JobRepository()

			aggregate, err := jobRepo.Get(ctx, cmd.AccountID(), cmd.JobID())
			if err != nil {
				return err
			}

			if err = aggregate.Apply(cmd.Patch()); err != nil {
				return err
			}

			if aggregate.RecurringStatus() == job.RecurringCanceled {
				if err = releaseFromSlot(ctx, uow.RouteRepository(), aggregate); err != nil {
					return err
				}
			}

			return jobRepo.Update(ctx, aggregate)
		})
}
