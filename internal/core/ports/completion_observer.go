package ports

import (
	"context"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
)

// CompletionObserver is the boundary to the progress tracking collaborator.
// It is told about completions only after they were committed, and it cannot
// fail the operation that produced them.
type CompletionObserver interface {
	JobsCompleted(ctx context.Context, accountID kernel.UUID, jobs []*job.Job)
}
