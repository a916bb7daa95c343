package commands

import (
	"errors"
	"fmt"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/route"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

var ErrUpsertSlotCommandIsNotConstructed = errors.New(
	"UpsertSlotCommand must be created via NewUpsertSlotCommand constructor",
)

// UpsertSlotCommand writes one slot of a weekday: its name, work sequence and
// assignee.
//
// Example:
//
//	cmd, err := NewUpsertSlotCommand(accountID, kernel.Monday, 0, "North loop",
//	    []kernel.UUID{lawnID, hedgeID}, &employeeID, nil)
//	if err != nil {
//	    return err // ValidationError, or Conflict when both employee and crew are given
//	}
//	err = handler.Handle(ctx, cmd)
type UpsertSlotCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	weekday   kernel.Weekday
	index     int
	name      string
	jobIDs    []kernel.UUID
	assignee  route.Assignee

	guard guard.ConstructorGuard
}

// NewUpsertSlotCommand creates a slot write. At most one of employeeID and
// crewID may be set.
func NewUpsertSlotCommand(
	accountID kernel.UUID,
	weekday kernel.Weekday,
	index int,
	name string,
	jobIDs []kernel.UUID,
	employeeID, crewID *kernel.UUID,
) (UpsertSlotCommand, error) {
	command := UpsertSlotCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		accountID.Validate(),
		command.setPosition(weekday, index),
		command.setJobIDs(jobIDs),
	); err != nil {
		return UpsertSlotCommand{}, err
	}

	assignee, err := route.AssigneeFromIDs(employeeID, crewID)
	if err != nil {
		return UpsertSlotCommand{}, err
	}

	command.accountID = accountID
	command.assignee = assignee
	return command, nil
}

func (c UpsertSlotCommand) Validate() error {
	return c.guard.Validate(ErrUpsertSlotCommandIsNotConstructed)
}

func (c UpsertSlotCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c UpsertSlotCommand) Weekday() kernel.Weekday {
	return c.weekday
}

func (c UpsertSlotCommand) Index() int {
	return c.index
}

func (c UpsertSlotCommand) Name() string {
	return c.name
}

func (c UpsertSlotCommand) JobIDs() []kernel.UUID {
	return c.jobIDs
}

func (c UpsertSlotCommand) Assignee() route.Assignee {
	return c.assignee
}

func (c *UpsertSlotCommand) setPosition(weekday kernel.Weekday, index int) error {
	if err := weekday.Validate(); err != nil {
		return err
	}
	if index < 0 {
		return errs.NewValueIsInvalidErrorWithCause("index", fmt.Errorf("%d is negative", index))
	}

	c.weekday = weekday
	c.index = index
	return nil
}

func (c *UpsertSlotCommand) setJobIDs(jobIDs []kernel.UUID) error {
	seen := make(map[kernel.UUID]struct{}, len(jobIDs))
	for _, id := range jobIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("jobs", fmt.Errorf("job %s is listed twice", id))
		}
		seen[id] = struct{}{}
	}

	c.jobIDs = jobIDs
	return nil
}
