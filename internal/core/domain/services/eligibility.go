package services

import (
	"iter"
	"time"

	"fieldservice/internal/core/domain/model/job"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/route"
)

// ScheduledSet holds the ids of jobs placed in any slot of an account.
type ScheduledSet map[kernel.UUID]struct{}

// NewScheduledSet collects the job ids referenced by routes.
func NewScheduledSet(routes []*route.Route) ScheduledSet {
	set := make(ScheduledSet)
	for _, r := range routes {
		for _, id := range r.JobIDs() {
			set[id] = struct{}{}
		}
	}
	return set
}

// ScheduledSetOf builds a set from raw ids, as returned by a lightweight query.
func ScheduledSetOf(ids ...kernel.UUID) ScheduledSet {
	set := make(ScheduledSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s ScheduledSet) Has(id kernel.UUID) bool {
	_, ok := s[id]
	return ok
}

// EligibilityEngine decides pool membership. It keeps no state and caches
// nothing, so every call reflects the jobs it is given.
//
// A job is due when all of the following hold:
//   - it is not placed in any slot
//   - its status is Pending or Scheduled, or it is an active recurring job whose last visit Completed
//   - it is one-time, or the cutoff of its pattern has elapsed since the last service
//
// Cutoffs are 3 days for Weekly, 10 for Biweekly and 25 for Monthly. A recurring
// job never serviced is due at once; paused and canceled recurrences are never due.
//
// Example usage:
//
//	engine := services.NewEligibilityEngine()
//	if engine.IsDue(j, time.Now(), services.NewScheduledSet(routes)) {
//	    // offer j in the pool
//	}
type EligibilityEngine struct{}

func NewEligibilityEngine() EligibilityEngine {
	return EligibilityEngine{}
}

// IsDue reports whether j belongs in the available pool at now.
func (EligibilityEngine) IsDue(j *job.Job, now time.Time, scheduled ScheduledSet) bool {
	if j == nil || j.Validate() != nil {
		return false
	}
	if scheduled.Has(j.ID()) {
		return false
	}

	if !j.IsRecurring() {
		return j.Status().IsOpen()
	}

	if j.RecurringStatus() != job.RecurringActive {
		return false
	}
	if !j.Status().IsOpen() && j.Status() != job.Completed {
		return false
	}

	last := j.LastServiceDate()
	if last == nil {
		return true
	}
	return now.Sub(*last) >= j.Pattern().Cutoff()
}

// AvailablePool lazily filters jobs down to the due ones. Errors from the
// source are passed through and end the sequence.
func (e EligibilityEngine) AvailablePool(
	jobs iter.Seq2[*job.Job, error],
	now time.Time,
	scheduled ScheduledSet,
) iter.Seq2[*job.Job, error] {
	return func(yield func(*job.Job, error) bool) {
		for j, err := range jobs {
			if err != nil {
				yield(nil, err)
				return
			}
			if !e.IsDue(j, now, scheduled) {
				continue
			}
			if !yield(j, nil) {
				return
			}
		}
	}
}
