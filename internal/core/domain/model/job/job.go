package job

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

// ErrJobIsNotConstructed is returned when a Job instance was not created through
// NewJob or RestoreJob.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")

const maxTitleLength = 200

// Details holds the descriptive fields of a job that carry no scheduling rules.
type Details struct {
	Title      string
	Address    string
	CustomerID *kernel.UUID
}

// Job is the aggregate root of a unit of field work.
//
// Job follows these invariants:
//   - Must have a valid identifier and owning account
//   - Title is required
//   - A recurrence is present if and only if the job is recurring
//   - completionCount never decreases
//   - Can only be created through NewJob or RestoreJob
type Job struct {
	guard guard.ConstructorGuard

	id        kernel.UUID
	accountID kernel.UUID
	details   Details
	status    Status

	// recurrence is nil for one-time jobs
	recurrence *Recurrence

	// scheduledDay is nil while the job sits in the unscheduled pool
	scheduledDay *kernel.Weekday

	lastServiceDate *time.Time
	completionCount int

	// version is the optimistic concurrency counter of the stored row
	version int
}

// NewJob creates a Pending job.
//
// Parameters:
//   - id, accountID: Valid identifiers
//   - details: Title is required; address and customer are optional
//   - isRecurring: Whether the job repeats
//   - pattern: Required for recurring jobs, must be NoPattern otherwise
//
// Example:
//
//	j, err := job.NewJob(kernel.NewUUID(), accountID, job.Details{Title: "Front lawn"}, true, job.Weekly)
//	if err != nil {
//	    // Handle validation error
//	}
func NewJob(id, accountID kernel.UUID, details Details, isRecurring bool, pattern Pattern) (*Job, error) {
	j := &Job{
		guard:  guard.NewConstructorGuard(),
		status: Pending,
	}

	if err := errors.Join(
		j.setIdentity(id, accountID),
		j.setDetails(details),
		j.setRecurrence(isRecurring, pattern, NoRecurringStatus),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreParams carries a persisted job state back into the domain.
type RestoreParams struct {
	ID              kernel.UUID
	AccountID       kernel.UUID
	Details         Details
	Status          Status
	IsRecurring     bool
	Pattern         Pattern
	RecurringStatus RecurringStatus
	ScheduledDay    *kernel.Weekday
	LastServiceDate *time.Time
	CompletionCount int
	Version         int
}

// RestoreJob reconstructs a Job from persistence with full validation.
func RestoreJob(p RestoreParams) (*Job, error) {
	j := &Job{
		guard:           guard.NewConstructorGuard(),
		lastServiceDate: p.LastServiceDate,
		version:         p.Version,
	}

	if err := errors.Join(
		j.setIdentity(p.ID, p.AccountID),
		j.setDetails(p.Details),
		j.setStatus(p.Status),
		j.setRecurrence(p.IsRecurring, p.Pattern, p.RecurringStatus),
		j.setScheduledDay(p.ScheduledDay),
		j.setCompletionCount(p.CompletionCount),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// Validate ensures the Job was created through a constructor.
func (j *Job) Validate() error {
	if j == nil {
		return ErrJobIsNotConstructed
	}
	return j.guard.Validate(ErrJobIsNotConstructed)
}

func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

func (j *Job) ID() kernel.UUID {
	return j.id
}

func (j *Job) AccountID() kernel.UUID {
	return j.accountID
}

// BelongsTo reports whether the job is owned by accountID.
func (j *Job) BelongsTo(accountID kernel.UUID) bool {
	return j.accountID.IsEqual(accountID)
}

func (j *Job) Title() string {
	return j.details.Title
}

func (j *Job) Address() string {
	return j.details.Address
}

func (j *Job) CustomerID() *kernel.UUID {
	return j.details.CustomerID
}

func (j *Job) Status() Status {
	return j.status
}

func (j *Job) IsRecurring() bool {
	return j.recurrence != nil
}

// Recurrence returns the recurrence of a recurring job, or nil.
func (j *Job) Recurrence() *Recurrence {
	if j.recurrence == nil {
		return nil
	}
	r := *j.recurrence
	return &r
}

// Pattern returns NoPattern for one-time jobs.
func (j *Job) Pattern() Pattern {
	if j.recurrence == nil {
		return NoPattern
	}
	return j.recurrence.pattern
}

// RecurringStatus returns NoRecurringStatus for one-time jobs.
func (j *Job) RecurringStatus() RecurringStatus {
	if j.recurrence == nil {
		return NoRecurringStatus
	}
	return j.recurrence.status
}

func (j *Job) ScheduledDay() *kernel.Weekday {
	return j.scheduledDay
}

func (j *Job) IsScheduled() bool {
	return j.scheduledDay != nil
}

func (j *Job) LastServiceDate() *time.Time {
	return j.lastServiceDate
}

func (j *Job) CompletionCount() int {
	return j.completionCount
}

func (j *Job) Version() int {
	return j.version
}

// SyncVersion records the version the repository stored the job with.
func (j *Job) SyncVersion(version int) {
	j.version = version
}

// Patch describes a partial update of a job. Nil fields are left unchanged.
type Patch struct {
	Title           *string
	Address         *string
	CustomerID      *kernel.UUID
	ClearCustomer   bool
	IsRecurring     *bool
	Pattern         *Pattern
	RecurringStatus *RecurringStatus
}

// Apply updates the job fields described by patch. Either every change is
// applied or none is.
//
// Business rules:
//   - Turning recurrence off silently drops any supplied pattern
//   - A recurring job must end up with a pattern, supplied or already stored
//   - The recurring status defaults to Active when recurrence is turned on
func (j *Job) Apply(patch Patch) error {
	next := *j

	details := j.details
	if patch.Title != nil {
		details.Title = *patch.Title
	}
	if patch.Address != nil {
		details.Address = *patch.Address
	}
	if patch.CustomerID != nil {
		details.CustomerID = patch.CustomerID
	}
	if patch.ClearCustomer {
		details.CustomerID = nil
	}

	isRecurring := j.IsRecurring()
	if patch.IsRecurring != nil {
		isRecurring = *patch.IsRecurring
	}

	pattern, recurringStatus := NoPattern, NoRecurringStatus
	if isRecurring {
		pattern, recurringStatus = j.Pattern(), j.RecurringStatus()
		if patch.Pattern != nil {
			pattern = *patch.Pattern
		}
		if patch.RecurringStatus != nil {
			recurringStatus = *patch.RecurringStatus
		}
	}

	if err := errors.Join(
		next.setDetails(details),
		next.setRecurrence(isRecurring, pattern, recurringStatus),
	); err != nil {
		return err
	}

	*j = next
	return nil
}

// ScheduleOn places the job on a weekday. Pending jobs and completed
// recurring jobs become Scheduled; a job already in progress keeps its status.
func (j *Job) ScheduleOn(day kernel.Weekday) error {
	if err := day.Validate(); err != nil {
		return err
	}

	switch {
	case j.status == Canceled:
		return errs.NewValueIsInvalidErrorWithCause("job", fmt.Errorf("job %s is canceled", j.id))
	case j.recurrence != nil && j.recurrence.status == RecurringCanceled:
		return errs.NewValueIsInvalidErrorWithCause("job", fmt.Errorf("recurrence of job %s is canceled", j.id))
	case j.status == Completed && j.recurrence == nil:
		return errs.NewValueIsInvalidErrorWithCause("job", fmt.Errorf("one-time job %s is already completed", j.id))
	}

	if j.status != InProgress {
		j.status = Scheduled
	}
	j.scheduledDay = day.Ptr()
	return nil
}

// Unschedule returns the job to the pool. It reports whether the job was scheduled.
func (j *Job) Unschedule() bool {
	if j.scheduledDay == nil {
		return false
	}
	j.scheduledDay = nil
	return true
}

// Complete records a service visit at now.
//
// Business rules:
//   - Canceled jobs cannot be completed
//   - A one-time job can be completed only once; its recurrence fields are cleared
//   - The job leaves its weekday and the completion count grows by one
func (j *Job) Complete(now time.Time) error {
	if j.status == Canceled {
		return errs.NewValueIsInvalidErrorWithCause("job", fmt.Errorf("job %s is canceled", j.id))
	}
	if j.status == Completed && j.recurrence == nil {
		return errs.NewValueIsInvalidErrorWithCause("job", fmt.Errorf("one-time job %s is already completed", j.id))
	}

	serviced := now.UTC()
	j.status = Completed
	j.lastServiceDate = &serviced
	j.completionCount++
	j.scheduledDay = nil
	return nil
}

// Cancel stops a job. One-time jobs become Canceled; recurring jobs have
// their recurrence canceled and keep their status. The job leaves its weekday.
func (j *Job) Cancel() error {
	if j.recurrence != nil {
		if j.recurrence.status == RecurringCanceled {
			return errs.NewValueIsInvalidErrorWithCause("job", fmt.Errorf("recurrence of job %s is already canceled", j.id))
		}
		j.recurrence.status = RecurringCanceled
		j.scheduledDay = nil
		return nil
	}

	switch j.status {
	case Canceled:
		return errs.NewValueIsInvalidErrorWithCause("job", fmt.Errorf("job %s is already canceled", j.id))
	case Completed:
		return errs.NewValueIsInvalidErrorWithCause("job", fmt.Errorf("job %s is already completed", j.id))
	default:
		j.status = Canceled
		j.scheduledDay = nil
		return nil
	}
}

func (j *Job) setIdentity(id, accountID kernel.UUID) error {
	if err := errors.Join(id.Validate(), accountID.Validate()); err != nil {
		return err
	}
	j.id = id
	j.accountID = accountID
	return nil
}

func (j *Job) setDetails(details Details) error {
	details.Title = strings.TrimSpace(details.Title)
	details.Address = strings.TrimSpace(details.Address)

	if details.Title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if len(details.Title) > maxTitleLength {
		return errs.NewValueIsOutOfRangeError("title length", len(details.Title), 1, maxTitleLength)
	}
	if details.CustomerID != nil {
		if err := details.CustomerID.Validate(); err != nil {
			return err
		}
	}

	j.details = details
	return nil
}

func (j *Job) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	j.status = status
	return nil
}

func (j *Job) setRecurrence(isRecurring bool, pattern Pattern, status RecurringStatus) error {
	if !isRecurring {
		if pattern != NoPattern {
			return errs.NewValueIsInvalidErrorWithCause(
				"recurrence pattern",
				fmt.Errorf("one-time job cannot have a %s pattern", pattern),
			)
		}
		j.recurrence = nil
		return nil
	}

	if pattern == NoPattern {
		return errs.NewValueIsRequiredError("recurrence pattern")
	}
	recurrence, err := NewRecurrence(pattern, status)
	if err != nil {
		return err
	}
	j.recurrence = &recurrence
	return nil
}

func (j *Job) setScheduledDay(day *kernel.Weekday) error {
	if day != nil {
		if err := day.Validate(); err != nil {
			return err
		}
	}
	j.scheduledDay = day
	return nil
}

func (j *Job) setCompletionCount(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("completion count", fmt.Errorf("%d is negative", count))
	}
	j.completionCount = count
	return nil
}
