package queries

import (
	"context"
	"strings"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RouteResponse is the read model of one route slot with its work sequence.
// At most one of EmployeeID and CrewID is set.
type RouteResponse struct {
	ID         kernel.UUID
	Weekday    kernel.Weekday
	Index      int
	Name       string
	EmployeeID *kernel.UUID
	CrewID     *kernel.UUID
	Jobs       []RouteJobResponse
}

// RouteJobResponse is a job as listed inside a slot.
type RouteJobResponse struct {
	ID      kernel.UUID
	Title   string
	Address string
	Status  job.Status
}

// loadRoutes reads the slots of an account with their jobs in one pass,
// ordered by weekday, index and position in the work sequence. A nil weekday
// reads the whole week.
func loadRoutes(
	ctx context.Context,
	db *gorm.DB,
	accountID kernel.UUID,
	weekday *kernel.Weekday,
	excludeCompleted bool,
) ([]RouteResponse, error) {
	var sql strings.Builder
	args := make([]any, 0, 4)

	sql.WriteString(`
		SELECT
			r.id,
			r.weekday,
			r.position,
			r.name,
			r.employee_id,
			r.crew_id,
			j.id,
			j.title,
			j.address,
			j.status
		FROM routes r
		LEFT JOIN route_jobs rj ON rj.route_id = r.id
		LEFT JOIN jobs j ON j.id = rj.job_id AND j.account_id = r.account_id`)
	if excludeCompleted {
		sql.WriteString(" AND j.status <> ?")
		args = append(args, int(job.Completed))
	}
	sql.WriteString(" WHERE r.account_id = ?")
	args = append(args, accountID.Bytes())
	if weekday != nil {
		sql.WriteString(" AND r.weekday = ?")
		args = append(args, int(*weekday))
	}
	sql.WriteString(" ORDER BY r.weekday, r.position, rj.position")

	rows, err := db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, errors.Wrap(err, "query routes")
	}
	defer rows.Close()

	routes := make([]RouteResponse, 0)
	for rows.Next() {
		var (
			routeID, jobID     uuid.NullUUID
			employeeID, crewID uuid.NullUUID
			day, index         int
			name               string
			title, address     *string
			status             *int
		)
		if err = rows.Scan(&routeID, &day, &index, &name, &employeeID, &crewID, &jobID, &title, &address, &status); err != nil {
			return nil, errors.Wrap(err, "scan route row")
		}

		id, err := kernel.UUIDFromBytes(routeID.UUID[:])
		if err != nil {
			return nil, err
		}
		if len(routes) == 0 || !routes[len(routes)-1].ID.IsEqual(id) {
			route := RouteResponse{
				ID:      id,
				Weekday: kernel.Weekday(day),
				Index:   index,
				Name:    name,
				Jobs:    make([]RouteJobResponse, 0),
			}
			if route.EmployeeID, err = nullableID(employeeID); err != nil {
				return nil, err
			}
			if route.CrewID, err = nullableID(crewID); err != nil {
				return nil, err
			}
			routes = append(routes, route)
		}

		if !jobID.Valid {
			continue
		}
		listed := RouteJobResponse{Status: job.Status(deref(status))}
		if listed.ID, err = kernel.UUIDFromBytes(jobID.UUID[:]); err != nil {
			return nil, err
		}
		listed.Title, listed.Address = deref(title), deref(address)
		current := &routes[len(routes)-1]
		current.Jobs = append(current.Jobs, listed)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "read route rows")
	}
	return routes, nil
}

func nullableID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil //nolint:nilnil // absent id
	}
	parsed, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
