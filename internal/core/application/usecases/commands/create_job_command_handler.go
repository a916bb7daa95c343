package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/job"
)

// CreateJobCommandHandler handles the business logic for job creation.
// New jobs start Pending with no weekday, so they enter the pool at once.
//
// Example:
//
//	handler := NewCreateJobCommandHandler(uowFactory, retrier)
//	cmd, _ := NewCreateJobCommand(accountID, kernel.NewUUID(), job.Details{Title: "Hedges"}, false, job.NoPattern)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("job creation failed: %w", err)
//	}
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
	retrier    Retrier
}

// NewCreateJobCommandHandler creates a handler for job creation operations.
// Requires a JobUoWFactory for transactional persistence.
func NewCreateJobCommandHandler(uowFactory JobUoWFactory, retrier Retrier) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
		retrier:    retrier,
	}
}

// Handle processes the job creation command.
// Builds the aggregate first so malformed input never opens a transaction.
// A rolled back attempt restores the aggregate's version, so it is reused.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := job.NewJob(cmd.JobID(), cmd.AccountID(), cmd.Details(), cmd.IsRecurring(), cmd.Pattern())
	if err != nil {
		return err
	}

	return h.retrier.Do(ctx, "createJob", func(ctx context.Context) error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		if err := uow.JobRepository().Add(ctx, aggregate); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}
