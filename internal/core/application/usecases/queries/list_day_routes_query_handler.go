package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListDayRoutesQueryHandler returns the slots of one weekday ordered by index.
// A day without slots yields an empty slice.
type ListDayRoutesQueryHandler struct {
	db *gorm.DB
}

func NewListDayRoutesQueryHandler(db *gorm.DB) ListDayRoutesQueryHandler {
	return ListDayRoutesQueryHandler{db: db}
}

func (h ListDayRoutesQueryHandler) Handle(ctx context.Context, query ListDayRoutesQuery) ([]RouteResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	weekday := query.Weekday()
	return loadRoutes(ctx, h.db, query.AccountID(), &weekday, query.ExcludeCompleted())
}
