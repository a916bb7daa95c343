package queries

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrGetWeekScheduleQueryIsNotConstructed = errors.New(
	"GetWeekScheduleQuery must be created via NewGetWeekScheduleQuery constructor",
)

// GetWeekScheduleQuery reads the whole weekly schedule of an account.
// With excludeCompleted set, completed jobs are left out of the slot job lists;
// the slots themselves are always listed.
//
// Example:
//
//	query, _ := NewGetWeekScheduleQuery(accountID, true)
//	week, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, day := range week.Days {
//	    fmt.Printf("%s: %d routes\n", day.Weekday, len(day.Routes))
//	}
type GetWeekScheduleQuery struct {
	guard guard.ConstructorGuard

	accountID        kernel.UUID
	excludeCompleted bool
}

func NewGetWeekScheduleQuery(accountID kernel.UUID, excludeCompleted bool) (GetWeekScheduleQuery, error) {
	if err := accountID.Validate(); err != nil {
		return GetWeekScheduleQuery{}, err
	}
	return GetWeekScheduleQuery{
		guard:            guard.NewConstructorGuard(),
		accountID:        accountID,
		excludeCompleted: excludeCompleted,
	}, nil
}

func (q GetWeekScheduleQuery) Validate() error {
	return q.guard.Validate(ErrGetWeekScheduleQueryIsNotConstructed)
}

func (q GetWeekScheduleQuery) AccountID() kernel.UUID {
	return q.accountID
}

func (q GetWeekScheduleQuery) ExcludeCompleted() bool {
	return q.excludeCompleted
}

// GetWeekScheduleQueryResponse lists all seven days, Monday first, including
// days without slots.
type GetWeekScheduleQueryResponse struct {
	Days []DayScheduleResponse
}

type DayScheduleResponse struct {
	Weekday kernel.Weekday
	Routes  []RouteResponse
}
