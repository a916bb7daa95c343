package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrCompleteJobCommandIsNotConstructed = errors.New(
	"CompleteJobCommand must be created via NewCompleteJobCommand constructor",
)

// CompleteJobCommand records a service visit of one job.
type CompleteJobCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	jobID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteJobCommand(accountID, jobID kernel.UUID) (CompleteJobCommand, error) {
	if err := errors.Join(accountID.Validate(), jobID.Validate()); err != nil {
		return CompleteJobCommand{}, err
	}

	return CompleteJobCommand{
		accountID: accountID,
		jobID:     jobID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteJobCommand) Validate() error {
	return c.guard.Validate(ErrCompleteJobCommandIsNotConstructed)
}

func (c CompleteJobCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c CompleteJobCommand) JobID() kernel.UUID {
	return c.jobID
}
