package ports

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/route"
)

// RouteReader is the read side of the Route Store.
type RouteReader interface {
	// Get retrieves the slot at weekday and index.
	Get(ctx context.Context, accountID kernel.UUID, weekday kernel.Weekday, index int) (*route.Route, error)

	// GetByID retrieves a slot by id.
	GetByID(ctx context.Context, accountID, id kernel.UUID) (*route.Route, error)

	// ListByDay returns the slots of a weekday ordered by index.
	ListByDay(ctx context.Context, accountID kernel.UUID, weekday kernel.Weekday) ([]*route.Route, error)

	// ListWeek returns every slot of the account ordered by weekday and index.
	ListWeek(ctx context.Context, accountID kernel.UUID) ([]*route.Route, error)

	// ScheduledJobIDs returns the ids of all jobs placed in any slot of the account.
	ScheduledJobIDs(ctx context.Context, accountID kernel.UUID) ([]kernel.UUID, error)
}

// RouteRepository defines the persistence contract for route slots.
type RouteRepository interface {
	RouteReader

	// Add persists a new slot with its job list.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists position, name, assignee and job list of a slot.
	Update(ctx context.Context, aggregate *route.Route) error

	// Delete removes a slot.
	Delete(ctx context.Context, aggregate *route.Route) error

	// DeleteAll removes every slot of the account.
	DeleteAll(ctx context.Context, accountID kernel.UUID) error

	// FindByJob returns the slot holding jobID, or nil when the job is not placed.
	FindByJob(ctx context.Context, accountID, jobID kernel.UUID) (*route.Route, error)
}
