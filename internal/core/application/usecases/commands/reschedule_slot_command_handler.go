package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/route"
	"fieldservice/internal/core/ports"
)

// RescheduleSlotCommandHandler moves a slot to another weekday.
//
// Business rules:
//   - The slot is appended after the last slot of the target weekday
//   - The source weekday is compacted exactly as after a delete
//   - The slot's jobs follow it to the new weekday
//   - Moving a slot to the weekday it is already on changes nothing
type RescheduleSlotCommandHandler struct {
	uowFactory UoWFactory
	retrier    Retrier
}

func NewRescheduleSlotCommandHandler(uowFactory UoWFactory, retrier Retrier) RescheduleSlotCommandHandler {
	return RescheduleSlotCommandHandler{
		uowFactory: uowFactory,
		retrier:    retrier,
	}
}

func (h RescheduleSlotCommandHandler) Handle(ctx context.Context, cmd RescheduleSlotCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inAccountTransaction(ctx, h.retrier, h.uowFactory, "rescheduleSlot", cmd.AccountID(),
		func(ctx context.Context, uow UoW) error {
			routeRepo := uow.RouteRepository()

			slot, err := h.locate(ctx, routeRepo, cmd)
			if err != nil {
				return err
			}
			from := slot.Weekday()
			if from == cmd.NewWeekday() {
				return nil
			}

			source, err := routeRepo.ListByDay(ctx, cmd.AccountID(), from)
			if err != nil {
				return err
			}
			target, err := routeRepo.ListByDay(ctx, cmd.AccountID(), cmd.NewWeekday())
			if err != nil {
				return err
			}

			if err = slot.MoveTo(cmd.NewWeekday(), len(target)); err != nil {
				return err
			}
			if err = routeRepo.Update(ctx, slot); err != nil {
				return err
			}

			remaining := make([]*route.Route, 0, len(source))
			for _, r := range source {
				if !r.ID().IsEqual(slot.ID()) {
					remaining = append(remaining, r)
				}
			}
			if err = persistReindexed(ctx, routeRepo, remaining); err != nil {
				return err
			}

			jobRepo := uow.JobRepository()
			jobs, err := jobRepo.GetMany(ctx, cmd.AccountID(), slot.JobIDs())
			if err != nil {
				return err
			}
			return scheduleJobs(ctx, jobRepo, jobs, cmd.NewWeekday())
		})
}

func (h RescheduleSlotCommandHandler) locate(
	ctx context.Context,
	routeRepo ports.RouteRepository,
	cmd RescheduleSlotCommand,
) (*route.Route, error) {
	if id := cmd.SlotID(); id != nil {
		return routeRepo.GetByID(ctx, cmd.AccountID(), *id)
	}
	return routeRepo.Get(ctx, cmd.AccountID(), cmd.Weekday(), cmd.Index())
}
