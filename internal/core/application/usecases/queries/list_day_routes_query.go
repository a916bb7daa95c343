package queries

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrListDayRoutesQueryIsNotConstructed = errors.New(
	"ListDayRoutesQuery must be created via NewListDayRoutesQuery constructor",
)

// ListDayRoutesQuery reads the ordered slots of one weekday.
type ListDayRoutesQuery struct {
	guard guard.ConstructorGuard

	accountID        kernel.UUID
	weekday          kernel.Weekday
	excludeCompleted bool
}

func NewListDayRoutesQuery(
	accountID kernel.UUID,
	weekday kernel.Weekday,
	excludeCompleted bool,
) (ListDayRoutesQuery, error) {
	if err := errors.Join(accountID.Validate(), weekday.Validate()); err != nil {
		return ListDayRoutesQuery{}, err
	}
	return ListDayRoutesQuery{
		guard:            guard.NewConstructorGuard(),
		accountID:        accountID,
		weekday:          weekday,
		excludeCompleted: excludeCompleted,
	}, nil
}

func (q ListDayRoutesQuery) Validate() error {
	return q.guard.Validate(ErrListDayRoutesQueryIsNotConstructed)
}

func (q ListDayRoutesQuery) AccountID() kernel.UUID {
	return q.accountID
}

func (q ListDayRoutesQuery) Weekday() kernel.Weekday {
	return q.weekday
}

func (q ListDayRoutesQuery) ExcludeCompleted() bool {
	return q.excludeCompleted
}
