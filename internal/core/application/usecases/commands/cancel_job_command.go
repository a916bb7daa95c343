package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrCancelJobCommandIsNotConstructed = errors.New(
	"CancelJobCommand must be created via NewCancelJobCommand constructor",
)

// CancelJobCommand stops a job: one-time jobs are canceled, recurring jobs
// have their recurrence canceled.
type CancelJobCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	jobID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelJobCommand(accountID, jobID kernel.UUID) (CancelJobCommand, error) {
	if err := errors.Join(accountID.Validate(), jobID.Validate()); err != nil {
		return CancelJobCommand{}, err
	}

	return CancelJobCommand{
		accountID: accountID,
		jobID:     jobID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CancelJobCommand) Validate() error {
	return c.guard.Validate(ErrCancelJobCommandIsNotConstructed)
}

func (c CancelJobCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c CancelJobCommand) JobID() kernel.UUID {
	return c.jobID
}
