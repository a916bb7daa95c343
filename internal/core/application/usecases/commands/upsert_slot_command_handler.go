package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/route"
	"fieldservice/internal/pkg/errs"
)

// UpsertSlotCommandHandler creates or rewrites one slot.
//
// Business rules:
//   - A new slot may only be appended, so the index must not exceed the slot count
//   - Every job must exist in the account and must not sit in another slot
//   - Jobs entering the slot are scheduled on its weekday; jobs leaving it return to the pool
type UpsertSlotCommandHandler struct {
	uowFactory UoWFactory
	retrier    Retrier
}

func NewUpsertSlotCommandHandler(uowFactory UoWFactory, retrier Retrier) UpsertSlotCommandHandler {
	return UpsertSlotCommandHandler{
		uowFactory: uowFactory,
		retrier:    retrier,
	}
}

func (h UpsertSlotCommandHandler) Handle(ctx context.Context, cmd UpsertSlotCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inAccountTransaction(ctx, h.retrier, h.uowFactory, "upsertSlot", cmd.AccountID(),
		func(ctx context.Context, uow UoW) error {
			routeRepo := uow.RouteRepository()
			jobRepo := uow.JobRepository()

			day, err := routeRepo.ListByDay(ctx, cmd.AccountID(), cmd.Weekday())
			if err != nil {
				return err
			}
			if cmd.Index() > len(day) {
				return errs.NewValueIsOutOfRangeError("index", cmd.Index(), 0, len(day))
			}

			jobs, err := jobRepo.GetMany(ctx, cmd.AccountID(), cmd.JobIDs())
			if err != nil {
				return err
			}

			var slot *route.Route
			var slotID *kernel.UUID
			if cmd.Index() < len(day) {
				slot = day[cmd.Index()]
				slotID = slot.ID().Ptr()
			}

			for _, id := range cmd.JobIDs() {
				if err = ensureUnplacedElsewhere(ctx, routeRepo, cmd.AccountID(), id, slotID); err != nil {
					return err
				}
			}

			var removed []kernel.UUID
			if slot == nil {
				slot, err = route.NewRoute(kernel.NewUUID(), cmd.AccountID(), cmd.Weekday(), cmd.Index(),
					cmd.Name(), cmd.JobIDs(), cmd.Assignee())
				if err != nil {
					return err
				}
				if err = routeRepo.Add(ctx, slot); err != nil {
					return err
				}
			} else {
				if removed, err = slot.ReplaceJobs(cmd.JobIDs()); err != nil {
					return err
				}
				if err = slot.Rename(cmd.Name()); err != nil {
					return err
				}
				slot.Assign(cmd.Assignee())
				if err = routeRepo.Update(ctx, slot); err != nil {
					return err
				}
			}

			if err = scheduleJobs(ctx, jobRepo, jobs, cmd.Weekday()); err != nil {
				return err
			}
			return unscheduleJobs(ctx, jobRepo, cmd.AccountID(), removed)
		})
}
