package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/route"
	"fieldservice/internal/pkg/guard"
)

var ErrAssignRouteCommandIsNotConstructed = errors.New(
	"AssignRouteCommand must be created via NewAssignRouteCommand constructor",
)

// AssignRouteCommand sets who works a slot: one employee, one crew or nobody.
type AssignRouteCommand struct { //nolint:recvcheck //using for validation
	slotAddress
	assignee route.Assignee

	guard guard.ConstructorGuard
}

// NewAssignRouteCommand creates an assignment. Leaving both ids nil clears
// the assignee; setting both is a conflict.
func NewAssignRouteCommand(
	accountID kernel.UUID,
	weekday kernel.Weekday,
	index int,
	employeeID, crewID *kernel.UUID,
) (AssignRouteCommand, error) {
	address, err := newSlotAddress(accountID, weekday, index)
	if err != nil {
		return AssignRouteCommand{}, err
	}

	assignee, err := route.AssigneeFromIDs(employeeID, crewID)
	if err != nil {
		return AssignRouteCommand{}, err
	}

	return AssignRouteCommand{
		slotAddress: address,
		assignee:    assignee,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AssignRouteCommand) Validate() error {
	return c.guard.Validate(ErrAssignRouteCommandIsNotConstructed)
}

func (c AssignRouteCommand) Assignee() route.Assignee {
	return c.assignee
}
