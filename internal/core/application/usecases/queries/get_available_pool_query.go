package queries

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrGetAvailablePoolQueryIsNotConstructed = errors.New(
	"GetAvailablePoolQuery must be created via NewGetAvailablePoolQuery constructor",
)

// GetAvailablePoolQuery lists the jobs of an account that are due for placement.
type GetAvailablePoolQuery struct {
	guard guard.ConstructorGuard

	accountID kernel.UUID
}

func NewGetAvailablePoolQuery(accountID kernel.UUID) (GetAvailablePoolQuery, error) {
	if err := accountID.Validate(); err != nil {
		return GetAvailablePoolQuery{}, err
	}
	return GetAvailablePoolQuery{guard: guard.NewConstructorGuard(), accountID: accountID}, nil
}

func (q GetAvailablePoolQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailablePoolQueryIsNotConstructed)
}

func (q GetAvailablePoolQuery) AccountID() kernel.UUID {
	return q.accountID
}
