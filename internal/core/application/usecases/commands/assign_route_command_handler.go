package commands

import (
	"context"
)

// AssignRouteCommandHandler replaces the assignee of one slot. Only the slot
// changes, but the write still runs under the account lock so it cannot
// interleave with a compaction moving the slot.
type AssignRouteCommandHandler struct {
	uowFactory UoWFactory
	retrier    Retrier
}

func NewAssignRouteCommandHandler(uowFactory UoWFactory, retrier Retrier) AssignRouteCommandHandler {
	return AssignRouteCommandHandler{
		uowFactory: uowFactory,
		retrier:    retrier,
	}
}

func (h AssignRouteCommandHandler) Handle(ctx context.Context, cmd AssignRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inAccountTransaction(ctx, h.retrier, h.uowFactory, "assignRoute", cmd.AccountID(),
		func(ctx context.Context, uow UoW) error {
			routeRepo := uow.RouteRepository()

			slot, err := routeRepo.Get(ctx, cmd.AccountID(), cmd.Weekday(), cmd.Index())
			if err != nil {
				return err
			}

			slot.Assign(cmd.Assignee())
			return routeRepo.Update(ctx, slot)
		})
}
