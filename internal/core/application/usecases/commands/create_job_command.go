package commands

import (
	"errors"
	"strings"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

var (
	ErrCreateJobCommandIsNotConstructed = errors.New(
		"CreateJobCommand must be created via NewCreateJobCommand constructor",
	)
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
)

// CreateJobCommand represents a request to register a new job in the pool.
// Recurrence consistency is checked by the job aggregate when the handler runs.
//
// Example:
//
//	jobID := kernel.NewUUID()
//	cmd, err := NewCreateJobCommand(accountID, jobID, job.Details{Title: "Front lawn"}, true, job.Weekly)
//	if err != nil {
//	    return fmt.Errorf("invalid job data: %w", err)
//	}
//
//	handler := NewCreateJobCommandHandler(uowFactory, retrier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create job: %w", err)
//	}
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	accountID   kernel.UUID
	jobID       kernel.UUID
	details     job.Details
	isRecurring bool
	pattern     job.Pattern

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to register a job.
// Validates both identifiers and that the title is not blank.
func NewCreateJobCommand(
	accountID, jobID kernel.UUID,
	details job.Details,
	isRecurring bool,
	pattern job.Pattern,
) (CreateJobCommand, error) {
	command := CreateJobCommand{
		isRecurring: isRecurring,
		pattern:     pattern,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setIDs(accountID, jobID),
		command.setDetails(details),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

func (c CreateJobCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c CreateJobCommand) Details() job.Details {
	return c.details
}

func (c CreateJobCommand) IsRecurring() bool {
	return c.isRecurring
}

func (c CreateJobCommand) Pattern() job.Pattern {
	return c.pattern
}

func (c *CreateJobCommand) setIDs(accountID, jobID kernel.UUID) error {
	if err := errors.Join(accountID.Validate(), jobID.Validate()); err != nil {
		return err
	}

	c.accountID = accountID
	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setDetails(details job.Details) error {
	if strings.TrimSpace(details.Title) == "" {
		return ErrTitleIsRequired
	}

	c.details = details
	return nil
}
