package services

import (
	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/route"
)

// ScheduleReconciler brings the scheduledDay of jobs in line with the routes
// that reference them.
//
// Business rules:
//   - A job referenced by a route is scheduled on that route's weekday
//   - A job referenced by no route is returned to the pool
//   - Jobs that cannot be scheduled (canceled, completed one-time) fail the whole reconciliation
type ScheduleReconciler struct{}

func NewScheduleReconciler() ScheduleReconciler {
	return ScheduleReconciler{}
}

// Reconcile mutates jobs to match routes and returns the ones that changed.
// The caller persists the returned jobs.
func (ScheduleReconciler) Reconcile(routes []*route.Route, jobs []*job.Job) ([]*job.Job, error) {
	placement := make(map[kernel.UUID]kernel.Weekday)
	for _, r := range routes {
		for _, id := range r.JobIDs() {
			placement[id] = r.Weekday()
		}
	}

	var changed []*job.Job
	for _, j := range jobs {
		weekday, placed := placement[j.ID()]
		if !placed {
			if j.Unschedule() {
				changed = append(changed, j)
			}
			continue
		}

		current := j.ScheduledDay()
		if current != nil && *current == weekday && j.Status() != job.Pending && j.Status() != job.Completed {
			continue
		}
		if err := j.ScheduleOn(weekday); err != nil {
			return nil, err
		}
		changed = append(changed, j)
	}

	return changed, nil
}
