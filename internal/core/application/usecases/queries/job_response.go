package queries

import (
	"iter"
	"time"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
)

// JobResponse is the read model of a job.
// Pattern and RecurringStatus are zero for one-time jobs.
type JobResponse struct {
	ID              kernel.UUID
	Title           string
	Address         string
	CustomerID      *kernel.UUID
	Status          job.Status
	IsRecurring     bool
	Pattern         job.Pattern
	RecurringStatus job.RecurringStatus
	ScheduledDay    *kernel.Weekday
	LastServiceDate *time.Time
	CompletionCount int
	Version         int
}

func newJobResponse(j *job.Job) JobResponse {
	return JobResponse{
		ID:              j.ID(),
		Title:           j.Title(),
		Address:         j.Address(),
		CustomerID:      j.CustomerID(),
		Status:          j.Status(),
		IsRecurring:     j.IsRecurring(),
		Pattern:         j.Pattern(),
		RecurringStatus: j.RecurringStatus(),
		ScheduledDay:    j.ScheduledDay(),
		LastServiceDate: j.LastServiceDate(),
		CompletionCount: j.CompletionCount(),
		Version:         j.Version(),
	}
}

// jobResponses maps a lazy job sequence onto read models, stopping at the first error.
func jobResponses(jobs iter.Seq2[*job.Job, error]) iter.Seq2[JobResponse, error] {
	return func(yield func(JobResponse, error) bool) {
		for j, err := range jobs {
			if err != nil {
				yield(JobResponse{}, err)
				return
			}
			if !yield(newJobResponse(j), nil) {
				return
			}
		}
	}
}
