package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrRescheduleSlotCommandIsNotConstructed = errors.New(
	"RescheduleSlotCommand must be created via NewRescheduleSlotCommand or NewRescheduleSlotByIDCommand",
)

// RescheduleSlotCommand moves a slot, found either by id or by its weekday
// position, to the end of another weekday.
type RescheduleSlotCommand struct { //nolint:recvcheck //using for validation
	accountID  kernel.UUID
	slotID     *kernel.UUID
	weekday    kernel.Weekday
	index      int
	newWeekday kernel.Weekday

	guard guard.ConstructorGuard
}

// NewRescheduleSlotCommand addresses the slot by weekday and index.
func NewRescheduleSlotCommand(
	accountID kernel.UUID,
	weekday kernel.Weekday,
	index int,
	newWeekday kernel.Weekday,
) (RescheduleSlotCommand, error) {
	address, err := newSlotAddress(accountID, weekday, index)
	if err != nil {
		return RescheduleSlotCommand{}, err
	}
	if err = newWeekday.Validate(); err != nil {
		return RescheduleSlotCommand{}, err
	}

	return RescheduleSlotCommand{
		accountID:  address.AccountID(),
		weekday:    address.Weekday(),
		index:      address.Index(),
		newWeekday: newWeekday,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// NewRescheduleSlotByIDCommand addresses the slot by its id.
func NewRescheduleSlotByIDCommand(accountID, slotID kernel.UUID, newWeekday kernel.Weekday) (RescheduleSlotCommand, error) {
	if err := errors.Join(accountID.Validate(), slotID.Validate(), newWeekday.Validate()); err != nil {
		return RescheduleSlotCommand{}, err
	}

	return RescheduleSlotCommand{
		accountID:  accountID,
		slotID:     &slotID,
		newWeekday: newWeekday,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RescheduleSlotCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleSlotCommandIsNotConstructed)
}

func (c RescheduleSlotCommand) AccountID() kernel.UUID {
	return c.accountID
}

// SlotID is set when the slot is addressed by id.
func (c RescheduleSlotCommand) SlotID() *kernel.UUID {
	return c.slotID
}

func (c RescheduleSlotCommand) Weekday() kernel.Weekday {
	return c.weekday
}

func (c RescheduleSlotCommand) Index() int {
	return c.index
}

func (c RescheduleSlotCommand) NewWeekday() kernel.Weekday {
	return c.newWeekday
}
