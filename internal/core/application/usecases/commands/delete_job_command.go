package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrDeleteJobCommandIsNotConstructed = errors.New(
	"DeleteJobCommand must be created via NewDeleteJobCommand constructor",
)

// DeleteJobCommand removes a job and its placement.
type DeleteJobCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	jobID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteJobCommand(accountID, jobID kernel.UUID) (DeleteJobCommand, error) {
	if err := errors.Join(accountID.Validate(), jobID.Validate()); err != nil {
		return DeleteJobCommand{}, err
	}

	return DeleteJobCommand{
		accountID: accountID,
		jobID:     jobID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteJobCommand) Validate() error {
	return c.guard.Validate(ErrDeleteJobCommandIsNotConstructed)
}

func (c DeleteJobCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c DeleteJobCommand) JobID() kernel.UUID {
	return c.jobID
}
