package http

import (
	"fmt"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/generated/servers"
	"fieldservice/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toJob(j queries.JobResponse) servers.Job {
	response := servers.Job{
		Id:              j.ID.Bytes(),
		Title:           j.Title,
		Address:         j.Address,
		CustomerId:      kernel.PtrBytes(j.CustomerID),
		Status:          servers.JobStatus(j.Status.String()),
		IsRecurring:     j.IsRecurring,
		LastServiceDate: j.LastServiceDate,
		CompletionCount: j.CompletionCount,
		Version:         j.Version,
	}
	if j.IsRecurring {
		pattern := servers.RecurrencePattern(j.Pattern.String())
		status := servers.RecurringStatus(j.RecurringStatus.String())
		response.RecurrencePattern = &pattern
		response.RecurringStatus = &status
	}
	if j.ScheduledDay != nil {
		day := toWeekday(*j.ScheduledDay)
		response.ScheduledDay = &day
	}
	return response
}

func toRoutes(routes []queries.RouteResponse) []servers.Route {
	response := make([]servers.Route, 0, len(routes))
	for _, r := range routes {
		jobs := make([]servers.RouteJob, 0, len(r.Jobs))
		for _, j := range r.Jobs {
			jobs = append(jobs, servers.RouteJob{
				Id:      j.ID.Bytes(),
				Title:   j.Title,
				Address: j.Address,
				Status:  servers.JobStatus(j.Status.String()),
			})
		}
		response = append(response, servers.Route{
			Id:         r.ID.Bytes(),
			Weekday:    toWeekday(r.Weekday),
			Index:      r.Index,
			Name:       r.Name,
			EmployeeId: kernel.PtrBytes(r.EmployeeID),
			CrewId:     kernel.PtrBytes(r.CrewID),
			Jobs:       jobs,
		})
	}
	return response
}

func toWeekSchedule(week queries.GetWeekScheduleQueryResponse) servers.WeekSchedule {
	days := make([]servers.DaySchedule, 0, len(week.Days))
	for _, day := range week.Days {
		days = append(days, servers.DaySchedule{
			Weekday: toWeekday(day.Weekday),
			Routes:  toRoutes(day.Routes),
		})
	}
	return servers.WeekSchedule{Days: days}
}

func toWeekday(d kernel.Weekday) servers.Weekday {
	return servers.Weekday(d.String())
}

func fromWeekday(d servers.Weekday) (kernel.Weekday, error) {
	return kernel.ParseWeekday(string(d))
}

func fromID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func fromIDs(ids *[]openapi_types.UUID) ([]kernel.UUID, error) {
	if ids == nil {
		return nil, nil
	}
	out := make([]kernel.UUID, 0, len(*ids))
	for _, id := range *ids {
		parsed, err := fromID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, parsed)
	}
	return out, nil
}

func fromPattern(p *servers.RecurrencePattern) (job.Pattern, error) {
	if p == nil {
		return job.NoPattern, nil
	}
	return job.ParsePattern(string(*p))
}

func fromJobPatch(body servers.JobPatch) (job.Patch, error) {
	patch := job.Patch{
		Title:       body.Title,
		Address:     body.Address,
		IsRecurring: body.IsRecurring,
	}

	customerID, err := kernel.UUIDFromPtr(body.CustomerId)
	if err != nil {
		return job.Patch{}, err
	}
	patch.CustomerID = customerID
	patch.ClearCustomer = body.ClearCustomer != nil && *body.ClearCustomer

	if body.RecurrencePattern != nil {
		pattern, err := job.ParsePattern(string(*body.RecurrencePattern))
		if err != nil {
			return job.Patch{}, err
		}
		patch.Pattern = &pattern
	}
	if body.RecurringStatus != nil {
		status, err := job.ParseRecurringStatus(string(*body.RecurringStatus))
		if err != nil {
			return job.Patch{}, err
		}
		patch.RecurringStatus = &status
	}
	return patch, nil
}

func fromWeekInput(body servers.WeekInput) (map[kernel.Weekday][]commands.WeekSlot, error) {
	week := make(map[kernel.Weekday][]commands.WeekSlot, len(body.Days))
	for name, slots := range body.Days {
		weekday, err := kernel.ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		if _, dup := week[weekday]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("days", fmt.Errorf("%s is listed twice", weekday))
		}

		planned := make([]commands.WeekSlot, 0, len(slots))
		for _, slot := range slots {
			planned = append(planned, commands.WeekSlot{})
			current := &planned[len(planned)-1]
			if slot.Name != nil {
				current.Name = *slot.Name
			}
			if current.JobIDs, err = fromIDs(slot.JobIds); err != nil {
				return nil, err
			}
			if current.EmployeeID, err = kernel.UUIDFromPtr(slot.EmployeeId); err != nil {
				return nil, err
			}
			if current.CrewID, err = kernel.UUIDFromPtr(slot.CrewId); err != nil {
				return nil, err
			}
		}
		week[weekday] = planned
	}
	return week, nil
}
