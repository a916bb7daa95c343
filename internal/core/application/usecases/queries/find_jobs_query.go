package queries

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/ports"
	"fieldservice/internal/pkg/guard"
)

var ErrFindJobsQueryIsNotConstructed = errors.New("FindJobsQuery must be created via NewFindJobsQuery constructor")

// FindJobsQuery lists the jobs of an account matching a filter.
type FindJobsQuery struct {
	guard guard.ConstructorGuard

	accountID kernel.UUID
	filter    ports.JobFilter
}

func NewFindJobsQuery(accountID kernel.UUID, filter ports.JobFilter) (FindJobsQuery, error) {
	if err := accountID.Validate(); err != nil {
		return FindJobsQuery{}, err
	}
	for _, status := range filter.Statuses {
		if err := status.Validate(); err != nil {
			return FindJobsQuery{}, err
		}
	}
	if filter.ScheduledDay != nil {
		if err := filter.ScheduledDay.Validate(); err != nil {
			return FindJobsQuery{}, err
		}
	}

	return FindJobsQuery{
		guard:     guard.NewConstructorGuard(),
		accountID: accountID,
		filter:    filter,
	}, nil
}

func (q FindJobsQuery) Validate() error {
	return q.guard.Validate(ErrFindJobsQueryIsNotConstructed)
}

func (q FindJobsQuery) AccountID() kernel.UUID {
	return q.accountID
}

func (q FindJobsQuery) Filter() ports.JobFilter {
	return q.filter
}
