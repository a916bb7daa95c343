package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrCompleteRouteCommandIsNotConstructed = errors.New(
	"CompleteRouteCommand must be created via NewCompleteRouteCommand constructor",
)

// CompleteRouteCommand completes every job of a slot and empties it.
type CompleteRouteCommand struct { //nolint:recvcheck //using for validation
	slotAddress

	guard guard.ConstructorGuard
}

func NewCompleteRouteCommand(accountID kernel.UUID, weekday kernel.Weekday, index int) (CompleteRouteCommand, error) {
	address, err := newSlotAddress(accountID, weekday, index)
	if err != nil {
		return CompleteRouteCommand{}, err
	}

	return CompleteRouteCommand{
		slotAddress: address,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteRouteCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRouteCommandIsNotConstructed)
}
