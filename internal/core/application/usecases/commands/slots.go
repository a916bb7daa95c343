package commands

import (
	"context"
	"fmt"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/route"
	"fieldservice/internal/core/ports"
	"fieldservice/internal/pkg/errs"
)

// releaseFromSlot drops the job from the slot holding it, if any, and returns
// it to the pool. The caller persists the job.
func releaseFromSlot(ctx context.Context, routes ports.RouteRepository, j *job.Job) error {
	holder, err := routes.FindByJob(ctx, j.AccountID(), j.ID())
	if err != nil {
		return err
	}
	if holder != nil && holder.RemoveJob(j.ID()) {
		if err = routes.Update(ctx, holder); err != nil {
			return err
		}
	}

	j.Unschedule()
	return nil
}

// persistReindexed compacts the remaining slots of a weekday and saves the
// ones that moved, lowest index first.
func persistReindexed(ctx context.Context, routes ports.RouteRepository, remaining []*route.Route) error {
	for _, moved := range route.Reindex(remaining) {
		if err := routes.Update(ctx, moved); err != nil {
			return err
		}
	}
	return nil
}

// ensureUnplacedElsewhere fails with a conflict when a job is held by a slot
// other than slotID.
func ensureUnplacedElsewhere(
	ctx context.Context,
	routes ports.RouteRepository,
	accountID, jobID kernel.UUID,
	slotID *kernel.UUID,
) error {
	holder, err := routes.FindByJob(ctx, accountID, jobID)
	if err != nil {
		return err
	}
	if holder == nil || (slotID != nil && holder.ID().IsEqual(*slotID)) {
		return nil
	}
	return errs.NewConflictErrorWithCause("jobs", fmt.Errorf(
		"job %s is already placed in %s slot %d", jobID, holder.Weekday(), holder.Index(),
	))
}

// scheduleJobs marks the listed jobs as placed on weekday and saves them.
func scheduleJobs(ctx context.Context, jobs ports.JobRepository, loaded []*job.Job, weekday kernel.Weekday) error {
	for _, j := range loaded {
		current := j.ScheduledDay()
		if current != nil && *current == weekday && (j.Status() == job.Scheduled || j.Status() == job.InProgress) {
			continue
		}
		if err := j.ScheduleOn(weekday); err != nil {
			return err
		}
		if err := jobs.Update(ctx, j); err != nil {
			return err
		}
	}
	return nil
}

// unscheduleJobs returns the listed jobs to the pool. Ids of jobs that no
// longer exist are skipped.
func unscheduleJobs(ctx context.Context, jobs ports.JobRepository, accountID kernel.UUID, ids []kernel.UUID) error {
	for _, id := range ids {
		j, err := jobs.Get(ctx, accountID, id)
		if err != nil {
			if errs.KindOf(err) == errs.KindNotFound {
				continue
			}
			return err
		}
		if !j.Unschedule() {
			continue
		}
		if err = jobs.Update(ctx, j); err != nil {
			return err
		}
	}
	return nil
}
