package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/route"
)

// DeleteSlotCommandHandler removes a slot and closes the gap it leaves.
//
// Business rules:
//   - A missing slot is NotFound
//   - Every later slot of the weekday moves down by one index
//   - The slot's jobs return to the pool
type DeleteSlotCommandHandler struct {
	uowFactory UoWFactory
	retrier    Retrier
}

func NewDeleteSlotCommandHandler(uowFactory UoWFactory, retrier Retrier) DeleteSlotCommandHandler {
	return DeleteSlotCommandHandler{
		uowFactory: uowFactory,
		retrier:    retrier,
	}
}

func (h DeleteSlotCommandHandler) Handle(ctx context.Context, cmd DeleteSlotCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inAccountTransaction(ctx, h.retrier, h.uowFactory, "deleteSlot", cmd.AccountID(),
		func(ctx context.Context, uow UoW) error {
			routeRepo := uow.RouteRepository()

			slot, err := routeRepo.Get(ctx, cmd.AccountID(), cmd.Weekday(), cmd.Index())
			if err != nil {
				return err
			}

			day, err := routeRepo.ListByDay(ctx, cmd.AccountID(), cmd.Weekday())
			if err != nil {
				return err
			}

			if err = routeRepo.Delete(ctx, slot); err != nil {
				return err
			}

			remaining := make([]*route.Route, 0, len(day))
			for _, r := range day {
				if !r.ID().IsEqual(slot.ID()) {
					remaining = append(remaining, r)
				}
			}
			if err = persistReindexed(ctx, routeRepo, remaining); err != nil {
				return err
			}

			return unscheduleJobs(ctx, uow.JobRepository(), cmd.AccountID(), slot.JobIDs())
		})
}
