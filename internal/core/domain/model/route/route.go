package route

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when a Route instance was not created
// through NewRoute or RestoreRoute.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

const maxNameLength = 100

// DefaultName is the label of a slot created without one.
func DefaultName(index int) string {
	return fmt.Sprintf("Route %d", index+1)
}

// Route is one slot of the weekly schedule.
//
// Route follows these invariants:
//   - Weekday is valid and index is not negative
//   - No job id appears twice in the job list
//   - The assignee is nobody, one employee or one crew
//
// Density of indices across the slots of a weekday is kept by Reindex.
type Route struct {
	guard guard.ConstructorGuard

	id        kernel.UUID
	accountID kernel.UUID
	weekday   kernel.Weekday
	index     int
	name      string

	// nameDefaulted marks a name derived from the index rather than chosen
	nameDefaulted bool

	// jobIDs is the work sequence of the slot
	jobIDs   []kernel.UUID
	assignee Assignee

	version int
}

// NewRoute creates a slot. A blank name defaults to DefaultName(index) and
// keeps following the index when the slot moves.
func NewRoute(
	id, accountID kernel.UUID,
	weekday kernel.Weekday,
	index int,
	name string,
	jobIDs []kernel.UUID,
	assignee Assignee,
) (*Route, error) {
	return RestoreRoute(id, accountID, weekday, index, name, jobIDs, assignee, 0)
}

// RestoreRoute reconstructs a slot from persistence. Storage passes a blank
// name for slots whose name was defaulted.
func RestoreRoute(
	id, accountID kernel.UUID,
	weekday kernel.Weekday,
	index int,
	name string,
	jobIDs []kernel.UUID,
	assignee Assignee,
	version int,
) (*Route, error) {
	r := &Route{
		guard:    guard.NewConstructorGuard(),
		assignee: assignee,
		version:  version,
	}

	if err := errors.Join(
		r.setIdentity(id, accountID),
		r.setPosition(weekday, index),
		r.setJobs(jobIDs),
	); err != nil {
		return nil, err
	}
	if err := r.Rename(name); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r *Route) ID() kernel.UUID {
	return r.id
}

func (r *Route) AccountID() kernel.UUID {
	return r.accountID
}

func (r *Route) BelongsTo(accountID kernel.UUID) bool {
	return r.accountID.IsEqual(accountID)
}

func (r *Route) Weekday() kernel.Weekday {
	return r.weekday
}

func (r *Route) Index() int {
	return r.index
}

func (r *Route) Name() string {
	return r.name
}

// NameIsDefault reports whether the name was derived from the index.
func (r *Route) NameIsDefault() bool {
	return r.nameDefaulted
}

// JobIDs returns a copy of the work sequence.
func (r *Route) JobIDs() []kernel.UUID {
	return slices.Clone(r.jobIDs)
}

func (r *Route) Contains(jobID kernel.UUID) bool {
	return slices.ContainsFunc(r.jobIDs, jobID.IsEqual)
}

func (r *Route) Assignee() Assignee {
	return r.assignee
}

func (r *Route) Version() int {
	return r.version
}

// SyncVersion records the version the repository stored the slot with.
func (r *Route) SyncVersion(version int) {
	r.version = version
}

// Rename sets the display name. A blank name falls back to DefaultName.
func (r *Route) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		r.name = DefaultName(r.index)
		r.nameDefaulted = true
		return nil
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, maxNameLength)
	}
	r.name = name
	r.nameDefaulted = false
	return nil
}

// ReplaceJobs swaps the work sequence and returns the ids that left the slot.
func (r *Route) ReplaceJobs(jobIDs []kernel.UUID) ([]kernel.UUID, error) {
	previous := r.jobIDs
	if err := r.setJobs(jobIDs); err != nil {
		return nil, err
	}

	var removed []kernel.UUID
	for _, id := range previous {
		if !r.Contains(id) {
			removed = append(removed, id)
		}
	}
	return removed, nil
}

// ClearJobs empties the slot and returns the ids it held.
func (r *Route) ClearJobs() []kernel.UUID {
	cleared := r.jobIDs
	r.jobIDs = []kernel.UUID{}
	return cleared
}

// RemoveJob drops jobID from the sequence, reporting whether it was there.
func (r *Route) RemoveJob(jobID kernel.UUID) bool {
	before := len(r.jobIDs)
	r.jobIDs = slices.DeleteFunc(r.jobIDs, jobID.IsEqual)
	return len(r.jobIDs) != before
}

func (r *Route) Assign(assignee Assignee) {
	r.assignee = assignee
}

// MoveTo places the slot at a new position. Names that were defaulted follow
// the new index; chosen names are kept.
func (r *Route) MoveTo(weekday kernel.Weekday, index int) error {
	if err := r.setPosition(weekday, index); err != nil {
		return err
	}
	r.moveIndex(index)
	return nil
}

// moveIndex shifts the slot within its weekday. index must not be negative.
func (r *Route) moveIndex(index int) {
	r.index = index
	if r.nameDefaulted {
		r.name = DefaultName(index)
	}
}

func (r *Route) setIdentity(id, accountID kernel.UUID) error {
	if err := errors.Join(id.Validate(), accountID.Validate()); err != nil {
		return err
	}
	r.id = id
	r.accountID = accountID
	return nil
}

func (r *Route) setPosition(weekday kernel.Weekday, index int) error {
	if err := weekday.Validate(); err != nil {
		return err
	}
	if index < 0 {
		return errs.NewValueIsInvalidErrorWithCause("index", fmt.Errorf("%d is negative", index))
	}
	r.weekday = weekday
	r.index = index
	return nil
}

func (r *Route) setJobs(jobIDs []kernel.UUID) error {
	seen := make(map[kernel.UUID]struct{}, len(jobIDs))
	for _, id := range jobIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("jobs", fmt.Errorf("job %s is listed twice", id))
		}
		seen[id] = struct{}{}
	}
	r.jobIDs = slices.Clone(jobIDs)
	if r.jobIDs == nil {
		r.jobIDs = []kernel.UUID{}
	}
	return nil
}
