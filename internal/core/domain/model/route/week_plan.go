package route

import (
	"fmt"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
)

// SlotPlan is one submitted slot of a week plan.
type SlotPlan struct {
	Name     string
	JobIDs   []kernel.UUID
	Assignee Assignee
}

// WeekPlan maps every weekday to its ordered slots. Days that are absent have no slots.
type WeekPlan struct {
	days map[kernel.Weekday][]SlotPlan
}

// NewWeekPlan validates a whole-week submission: every weekday must be valid
// and no job may be referenced more than once across the week.
func NewWeekPlan(days map[kernel.Weekday][]SlotPlan) (WeekPlan, error) {
	for weekday := range days {
		if err := weekday.Validate(); err != nil {
			return WeekPlan{}, err
		}
	}

	seen := make(map[kernel.UUID]string)
	for _, weekday := range kernel.Weekdays() {
		for index, slot := range days[weekday] {
			where := fmt.Sprintf("%s slot %d", weekday, index)
			for _, id := range slot.JobIDs {
				if err := id.Validate(); err != nil {
					return WeekPlan{}, err
				}
				if first, dup := seen[id]; dup {
					return WeekPlan{}, errs.NewValueIsInvalidErrorWithCause(
						"schedule",
						fmt.Errorf("job %s is referenced by %s and %s", id, first, where),
					)
				}
				seen[id] = where
			}
		}
	}

	return WeekPlan{days: days}, nil
}

// JobIDs returns every job referenced by the plan.
func (p WeekPlan) JobIDs() []kernel.UUID {
	var ids []kernel.UUID
	for _, weekday := range kernel.Weekdays() {
		for _, slot := range p.days[weekday] {
			ids = append(ids, slot.JobIDs...)
		}
	}
	return ids
}

// Day returns the slots planned for weekday.
func (p WeekPlan) Day(weekday kernel.Weekday) []SlotPlan {
	return p.days[weekday]
}

// Build creates the routes of the plan for accountID, using submission order as index.
func (p WeekPlan) Build(accountID kernel.UUID) ([]*Route, error) {
	var routes []*Route
	for _, weekday := range kernel.Weekdays() {
		for index, slot := range p.days[weekday] {
			r, err := NewRoute(kernel.NewUUID(), accountID, weekday, index, slot.Name, slot.JobIDs, slot.Assignee)
			if err != nil {
				return nil, err
			}
			routes = append(routes, r)
		}
	}
	return routes, nil
}
