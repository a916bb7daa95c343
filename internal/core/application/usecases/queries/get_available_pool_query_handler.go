package queries

import (
	"context"
	"iter"

	"fieldservice/internal/core/domain/services"
	"fieldservice/internal/core/ports"
)

// GetAvailablePoolQueryHandler combines the Job Store, the Route Store and
// the Eligibility Engine.
//
// The scheduled set is taken from the slots rather than from the jobs'
// scheduled day, so a job placed in any slot never shows up in the pool.
// Eligibility is evaluated against the clock on every call.
type GetAvailablePoolQueryHandler struct {
	jobs   ports.JobReader
	routes ports.RouteReader
	clock  ports.Clock
	engine services.EligibilityEngine
}

func NewGetAvailablePoolQueryHandler(
	jobs ports.JobReader,
	routes ports.RouteReader,
	clock ports.Clock,
) GetAvailablePoolQueryHandler {
	return GetAvailablePoolQueryHandler{
		jobs:   jobs,
		routes: routes,
		clock:  clock,
		engine: services.NewEligibilityEngine(),
	}
}

func (h GetAvailablePoolQueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePoolQuery,
) (iter.Seq2[JobResponse, error], error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	placed, err := h.routes.ScheduledJobIDs(ctx, query.AccountID())
	if err != nil {
		return nil, err
	}

	pool := h.engine.AvailablePool(
		h.jobs.Find(ctx, query.AccountID(), ports.JobFilter{}),
		h.clock.Now(),
		services.ScheduledSetOf(placed...),
	)
	return jobResponses(pool), nil
}
