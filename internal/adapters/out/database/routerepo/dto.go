// Package routerepo provides the GORM persistence of route slots: the routes
// table, the ordered route_jobs link table and the Route Store repository.
package routerepo

import (
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents a slot row. The unique slot index keeps two slots from
// claiming the same weekday position; the check keeps the assignee single.
type RouteDTO struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey"`
	AccountID     uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_routes_slot,priority:1"`
	Weekday       int           `gorm:"not null;uniqueIndex:idx_routes_slot,priority:2"`
	Position      int           `gorm:"not null;uniqueIndex:idx_routes_slot,priority:3"`
	Name          string        `gorm:"size:100;not null"`
	NameIsDefault bool          `gorm:"not null;default:false"`
	EmployeeID    *uuid.UUID    `gorm:"type:uuid;check:chk_routes_single_assignee,employee_id IS NULL OR crew_id IS NULL"`
	CrewID        *uuid.UUID    `gorm:"type:uuid"`
	Version       int           `gorm:"not null;default:0"`
	Jobs          []RouteJobDTO `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for route slots.
func (RouteDTO) TableName() string {
	return "routes"
}

// RouteJobDTO places one job at one position of a slot's work sequence.
// The unique job index keeps a job in at most one slot.
type RouteJobDTO struct {
	RouteID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey;autoIncrement:false"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_route_jobs_job"`
}

// TableName specifies the database table name for the slot job sequence.
func (RouteJobDTO) TableName() string {
	return "route_jobs"
}

func fromDomain(r *route.Route) RouteDTO {
	assignee := r.Assignee()
	dto := RouteDTO{
		ID:            r.ID().Bytes(),
		AccountID:     r.AccountID().Bytes(),
		Weekday:       int(r.Weekday()),
		Position:      r.Index(),
		Name:          r.Name(),
		NameIsDefault: r.NameIsDefault(),
		EmployeeID:    kernel.PtrBytes(assignee.EmployeeID()),
		CrewID:        kernel.PtrBytes(assignee.CrewID()),
		Version:       r.Version(),
	}
	dto.Jobs = jobLinks(r)
	return dto
}

func jobLinks(r *route.Route) []RouteJobDTO {
	ids := r.JobIDs()
	links := make([]RouteJobDTO, 0, len(ids))
	for position, id := range ids {
		links = append(links, RouteJobDTO{
			RouteID:   r.ID().Bytes(),
			Position:  position,
			AccountID: r.AccountID().Bytes(),
			JobID:     id.Bytes(),
		})
	}
	return links
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}
	employeeID, err := kernel.UUIDFromPtr(dto.EmployeeID)
	if err != nil {
		return nil, err
	}
	crewID, err := kernel.UUIDFromPtr(dto.CrewID)
	if err != nil {
		return nil, err
	}
	assignee, err := route.AssigneeFromIDs(employeeID, crewID)
	if err != nil {
		return nil, err
	}

	// a blank name lets the slot derive it from its index again
	name := dto.Name
	if dto.NameIsDefault {
		name = ""
	}

	jobIDs := make([]kernel.UUID, 0, len(dto.Jobs))
	for _, link := range dto.Jobs {
		jobID, err := kernel.UUIDFromBytes(link.JobID[:])
		if err != nil {
			return nil, err
		}
		jobIDs = append(jobIDs, jobID)
	}

	return route.RestoreRoute(
		id,
		accountID,
		kernel.Weekday(dto.Weekday),
		dto.Position,
		name,
		jobIDs,
		assignee,
		dto.Version,
	)
}
