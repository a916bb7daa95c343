// Package ports defines the contracts between the scheduling core and its
// infrastructure: repositories, the unit of work, the clock and outbound
// collaborators.
package ports

import (
	"context"
	"iter"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
)

// JobFilter narrows FindJobs. Zero value matches every job of the account.
type JobFilter struct {
	// Statuses matches any of the listed statuses when not empty.
	Statuses []job.Status

	// ScheduledDay matches jobs placed on that weekday.
	ScheduledDay *kernel.Weekday

	// UnscheduledOnly matches jobs with no weekday. It wins over ScheduledDay.
	UnscheduledOnly bool
}

// JobReader is the read side of the Job Store. Every method is scoped to one
// account; jobs of other accounts are reported as not found.
type JobReader interface {
	// Get retrieves a job by id.
	Get(ctx context.Context, accountID, id kernel.UUID) (*job.Job, error)

	// GetMany retrieves the listed jobs in the order given. A missing id fails the whole call with NotFound.
	GetMany(ctx context.Context, accountID kernel.UUID, ids []kernel.UUID) ([]*job.Job, error)

	// Find returns a lazy sequence over matching jobs ordered by creation.
	// Each range over the sequence runs the query again, so it can be restarted.
	Find(ctx context.Context, accountID kernel.UUID, filter JobFilter) iter.Seq2[*job.Job, error]
}

// JobRepository defines the persistence contract for job aggregates.
type JobRepository interface {
	JobReader

	// Add persists a new job.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job. A stale version is a write conflict.
	Update(ctx context.Context, aggregate *job.Job) error

	// Delete removes a job.
	Delete(ctx context.Context, aggregate *job.Job) error

	// ListScheduled returns every job of the account that has a scheduled weekday.
	ListScheduled(ctx context.Context, accountID kernel.UUID) ([]*job.Job, error)
}
