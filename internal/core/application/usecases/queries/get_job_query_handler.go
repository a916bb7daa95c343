package queries

import (
	"context"

	"fieldservice/internal/core/ports"
)

// GetJobQueryHandler reads a job through the Job Store. Jobs of other
// accounts are reported as not found.
type GetJobQueryHandler struct {
	jobs ports.JobReader
}

func NewGetJobQueryHandler(jobs ports.JobReader) GetJobQueryHandler {
	return GetJobQueryHandler{jobs: jobs}
}

func (h GetJobQueryHandler) Handle(ctx context.Context, query GetJobQuery) (JobResponse, error) {
	if err := query.Validate(); err != nil {
		return JobResponse{}, err
	}

	j, err := h.jobs.Get(ctx, query.AccountID(), query.JobID())
	if err != nil {
		return JobResponse{}, err
	}
	return newJobResponse(j), nil
}
