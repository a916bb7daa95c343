package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrDeleteSlotCommandIsNotConstructed = errors.New(
	"DeleteSlotCommand must be created via NewDeleteSlotCommand constructor",
)

// DeleteSlotCommand removes the slot at weekday and index.
type DeleteSlotCommand struct { //nolint:recvcheck //using for validation
	slotAddress

	guard guard.ConstructorGuard
}

func NewDeleteSlotCommand(accountID kernel.UUID, weekday kernel.Weekday, index int) (DeleteSlotCommand, error) {
	address, err := newSlotAddress(accountID, weekday, index)
	if err != nil {
		return DeleteSlotCommand{}, err
	}

	return DeleteSlotCommand{
		slotAddress: address,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteSlotCommand) Validate() error {
	return c.guard.Validate(ErrDeleteSlotCommandIsNotConstructed)
}
