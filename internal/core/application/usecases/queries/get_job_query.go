// Package queries contains the read operations of the scheduling service.
// Implements the Query pattern for read operations in the CQRS architecture:
// queries never take the account lock and return read models, not aggregates.
package queries

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrGetJobQueryIsNotConstructed = errors.New("GetJobQuery must be created via NewGetJobQuery constructor")

// GetJobQuery retrieves one job of an account.
//
// Example:
//
//	query, err := NewGetJobQuery(accountID, jobID)
//	if err != nil {
//	    return err
//	}
//	response, err := handler.Handle(ctx, query)
type GetJobQuery struct {
	guard guard.ConstructorGuard

	accountID kernel.UUID
	jobID     kernel.UUID
}

func NewGetJobQuery(accountID, jobID kernel.UUID) (GetJobQuery, error) {
	if err := errors.Join(accountID.Validate(), jobID.Validate()); err != nil {
		return GetJobQuery{}, err
	}
	return GetJobQuery{
		guard:     guard.NewConstructorGuard(),
		accountID: accountID,
		jobID:     jobID,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobQuery) Validate() error {
	return q.guard.Validate(ErrGetJobQueryIsNotConstructed)
}

func (q GetJobQuery) AccountID() kernel.UUID {
	return q.accountID
}

func (q GetJobQuery) JobID() kernel.UUID {
	return q.jobID
}
