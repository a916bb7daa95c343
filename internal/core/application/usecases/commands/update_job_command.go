package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrUpdateJobCommandIsNotConstructed = errors.New(
	"UpdateJobCommand must be created via NewUpdateJobCommand constructor",
)

// UpdateJobCommand carries a partial update of a job's fields. Completion and
// cancellation have their own commands.
type UpdateJobCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	jobID     kernel.UUID
	patch     job.Patch

	guard guard.ConstructorGuard
}

// NewUpdateJobCommand creates a command to patch a job.
func NewUpdateJobCommand(accountID, jobID kernel.UUID, patch job.Patch) (UpdateJobCommand, error) {
	if err := errors.Join(accountID.Validate(), jobID.Validate()); err != nil {
		return UpdateJobCommand{}, err
	}

	return UpdateJobCommand{
		accountID: accountID,
		jobID:     jobID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateJobCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobCommandIsNotConstructed)
}

func (c UpdateJobCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c UpdateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c UpdateJobCommand) Patch() job.Patch {
	return c.patch
}
