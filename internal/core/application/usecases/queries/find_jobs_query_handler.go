package queries

import (
	"context"
	"iter"

	"fieldservice/internal/core/ports"
)

// FindJobsQueryHandler streams matching jobs in creation order.
//
// The returned sequence is lazy and restartable: nothing is read until it is
// ranged over, and every range queries the store again.
type FindJobsQueryHandler struct {
	jobs ports.JobReader
}

func NewFindJobsQueryHandler(jobs ports.JobReader) FindJobsQueryHandler {
	return FindJobsQueryHandler{jobs: jobs}
}

func (h FindJobsQueryHandler) Handle(ctx context.Context, query FindJobsQuery) (iter.Seq2[JobResponse, error], error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return jobResponses(h.jobs.Find(ctx, query.AccountID(), query.Filter())), nil
}
