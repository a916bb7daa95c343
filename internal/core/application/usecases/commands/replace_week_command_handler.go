package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/services"
)

// ReplaceWeekCommandHandler swaps the whole weekly schedule of an account.
//
// Within one transaction it:
//  1. deletes every slot of the account
//  2. recreates the submitted slots, using submission order as index
//  3. schedules referenced jobs on their slot's weekday
//  4. returns every other scheduled job to the pool
//
// Any failure rolls all of it back, so readers see the old week or the new
// one and never a mix.
type ReplaceWeekCommandHandler struct {
	uowFactory UoWFactory
	retrier    Retrier
	reconciler services.ScheduleReconciler
}

func NewReplaceWeekCommandHandler(uowFactory UoWFactory, retrier Retrier) ReplaceWeekCommandHandler {
	return ReplaceWeekCommandHandler{
		uowFactory: uowFactory,
		retrier:    retrier,
		reconciler: services.NewScheduleReconciler(),
	}
}

func (h ReplaceWeekCommandHandler) Handle(ctx context.Context, cmd ReplaceWeekCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inAccountTransaction(ctx, h.retrier, h.uowFactory, "replaceWeek", cmd.AccountID(),
		func(ctx context.Context, uow UoW) error {
			routeRepo := uow.RouteRepository()
			jobRepo := uow.JobRepository()

			referenced, err := jobRepo.GetMany(ctx, cmd.AccountID(), cmd.Plan().JobIDs())
			if err != nil {
				return err
			}
			scheduled, err := jobRepo.ListScheduled(ctx, cmd.AccountID())
			if err != nil {
				return err
			}

			routes, err := cmd.Plan().Build(cmd.AccountID())
			if err != nil {
				return err
			}

			if err = routeRepo.DeleteAll(ctx, cmd.AccountID()); err != nil {
				return err
			}
			for _, r := range routes {
				if err = routeRepo.Add(ctx, r); err != nil {
					return err
				}
			}

			changed, err := h.reconciler.Reconcile(routes, mergeJobs(referenced, scheduled))
			if err != nil {
				return err
			}
			for _, j := range changed {
				if err = jobRepo.Update(ctx, j); err != nil {
					return err
				}
			}

			return nil
		})
}

// mergeJobs concatenates two job lists, keeping the first instance of a job
// loaded twice.
func mergeJobs(first, second []*job.Job) []*job.Job {
	seen := make(map[kernel.UUID]struct{}, len(first)+len(second))
	merged := make([]*job.Job, 0, len(first)+len(second))
	for _, list := range [][]*job.Job{first, second} {
		for _, j := range list {
			if _, dup := seen[j.ID()]; dup {
				continue
			}
			seen[j.ID()] = struct{}{}
			merged = append(merged, j)
		}
	}
	return merged
}
