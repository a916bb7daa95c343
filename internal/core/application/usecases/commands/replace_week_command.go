package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/route"
	"fieldservice/internal/pkg/guard"
)

var ErrReplaceWeekCommandIsNotConstructed = errors.New(
	"ReplaceWeekCommand must be created via NewReplaceWeekCommand constructor",
)

// WeekSlot is one submitted slot of a whole-week schedule.
type WeekSlot struct {
	Name       string
	JobIDs     []kernel.UUID
	EmployeeID *kernel.UUID
	CrewID     *kernel.UUID
}

// ReplaceWeekCommand carries a full weekly schedule that replaces every slot
// of the account. Weekdays left out end up with no slots.
//
// Example:
//
//	cmd, err := NewReplaceWeekCommand(accountID, map[kernel.Weekday][]WeekSlot{
//	    kernel.Monday:  {{Name: "North", JobIDs: []kernel.UUID{j1, j2}, EmployeeID: &ann}},
//	    kernel.Tuesday: {{JobIDs: []kernel.UUID{j3}}, {JobIDs: []kernel.UUID{j4}, CrewID: &crew}},
//	})
//	if err != nil {
//	    return err // a job listed twice anywhere in the week is a ValidationError
//	}
//	err = handler.Handle(ctx, cmd)
type ReplaceWeekCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	plan      route.WeekPlan

	guard guard.ConstructorGuard
}

func NewReplaceWeekCommand(accountID kernel.UUID, week map[kernel.Weekday][]WeekSlot) (ReplaceWeekCommand, error) {
	if err := accountID.Validate(); err != nil {
		return ReplaceWeekCommand{}, err
	}

	days := make(map[kernel.Weekday][]route.SlotPlan, len(week))
	for weekday, slots := range week {
		plans := make([]route.SlotPlan, 0, len(slots))
		for _, slot := range slots {
			assignee, err := route.AssigneeFromIDs(slot.EmployeeID, slot.CrewID)
			if err != nil {
				return ReplaceWeekCommand{}, err
			}
			plans = append(plans, route.SlotPlan{
				Name:     slot.Name,
				JobIDs:   slot.JobIDs,
				Assignee: assignee,
			})
		}
		days[weekday] = plans
	}

	plan, err := route.NewWeekPlan(days)
	if err != nil {
		return ReplaceWeekCommand{}, err
	}

	return ReplaceWeekCommand{
		accountID: accountID,
		plan:      plan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReplaceWeekCommand) Validate() error {
	return c.guard.Validate(ErrReplaceWeekCommandIsNotConstructed)
}

func (c ReplaceWeekCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c ReplaceWeekCommand) Plan() route.WeekPlan {
	return c.plan
}
