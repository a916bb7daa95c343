package queries

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetWeekScheduleQueryHandler reads the week straight from the routes, route_jobs
// and jobs tables.
type GetWeekScheduleQueryHandler struct {
	db *gorm.DB
}

func NewGetWeekScheduleQueryHandler(db *gorm.DB) GetWeekScheduleQueryHandler {
	return GetWeekScheduleQueryHandler{db: db}
}

func (h GetWeekScheduleQueryHandler) Handle(
	ctx context.Context,
	query GetWeekScheduleQuery,
) (GetWeekScheduleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWeekScheduleQueryResponse{}, err
	}

	routes, err := loadRoutes(ctx, h.db, query.AccountID(), nil, query.ExcludeCompleted())
	if err != nil {
		return GetWeekScheduleQueryResponse{}, err
	}

	byDay := make(map[kernel.Weekday][]RouteResponse)
	for _, r := range routes {
		byDay[r.Weekday] = append(byDay[r.Weekday], r)
	}

	response := GetWeekScheduleQueryResponse{Days: make([]DayScheduleResponse, 0, len(kernel.Weekdays()))}
	for _, weekday := range kernel.Weekdays() {
		day := DayScheduleResponse{Weekday: weekday, Routes: byDay[weekday]}
		if day.Routes == nil {
			day.Routes = make([]RouteResponse, 0)
		}
		response.Days = append(response.Days, day)
	}
	return response, nil
}
