package job

import (
	"fmt"
	"time"

	"fieldservice/internal/pkg/errs"
)

// Pattern is the cadence of a recurring job.
type Pattern int

const (
	// NoPattern marks a one-time job.
	NoPattern Pattern = iota
	Weekly
	Biweekly
	Monthly
)

var patternNames = map[Pattern]string{
	Weekly:   "Weekly",
	Biweekly: "Biweekly",
	Monthly:  "Monthly",
}

// day is the unit every eligibility cutoff is expressed in.
const day = 24 * time.Hour

// Cutoffs open the next cycle before the nominal 7/14/30 day period so that
// routes can be filled with some slack.
var patternCutoffs = map[Pattern]time.Duration{
	Weekly:   3 * day,
	Biweekly: 10 * day,
	Monthly:  25 * day,
}

// ParsePattern converts the external representation of a pattern.
func ParsePattern(s string) (Pattern, error) {
	for p, name := range patternNames {
		if name == s {
			return p, nil
		}
	}
	return NoPattern, errs.NewValueIsInvalidErrorWithCause(
		"recurrence pattern is invalid",
		fmt.Errorf("%q is not one of Weekly, Biweekly, Monthly", s),
	)
}

func (p Pattern) Validate() error {
	if _, ok := patternNames[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"recurrence pattern is invalid",
			fmt.Errorf("%d is not a valid pattern", p),
		)
	}
	return nil
}

func (p Pattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return "None"
}

// Cutoff is the minimum time since the last service before a recurring job
// with this pattern becomes due again. It is zero for NoPattern.
func (p Pattern) Cutoff() time.Duration {
	return patternCutoffs[p]
}

// RecurringStatus tells whether the recurrence of a job is running.
type RecurringStatus int

const (
	// NoRecurringStatus is carried by one-time jobs.
	NoRecurringStatus RecurringStatus = iota
	RecurringActive
	RecurringPaused
	RecurringCanceled
)

var recurringStatusNames = map[RecurringStatus]string{
	RecurringActive:   "Active",
	RecurringPaused:   "Paused",
	RecurringCanceled: "Canceled",
}

// ParseRecurringStatus converts the external representation of a recurring status.
func ParseRecurringStatus(s string) (RecurringStatus, error) {
	for rs, name := range recurringStatusNames {
		if name == s {
			return rs, nil
		}
	}
	return NoRecurringStatus, errs.NewValueIsInvalidErrorWithCause(
		"recurring status is invalid",
		fmt.Errorf("%q is not one of Active, Paused, Canceled", s),
	)
}

func (rs RecurringStatus) Validate() error {
	if _, ok := recurringStatusNames[rs]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"recurring status is invalid",
			fmt.Errorf("%d is not a valid recurring status", rs),
		)
	}
	return nil
}

func (rs RecurringStatus) String() string {
	if name, ok := recurringStatusNames[rs]; ok {
		return name
	}
	return "None"
}

// Recurrence is the value object carried only by recurring jobs.
type Recurrence struct {
	pattern Pattern
	status  RecurringStatus
}

// NewRecurrence builds an active recurrence when status is NoRecurringStatus.
func NewRecurrence(pattern Pattern, status RecurringStatus) (Recurrence, error) {
	if status == NoRecurringStatus {
		status = RecurringActive
	}
	if err := pattern.Validate(); err != nil {
		return Recurrence{}, err
	}
	if err := status.Validate(); err != nil {
		return Recurrence{}, err
	}
	return Recurrence{pattern: pattern, status: status}, nil
}

func (r Recurrence) Pattern() Pattern {
	return r.pattern
}

func (r Recurrence) Status() RecurringStatus {
	return r.status
}

func (r Recurrence) IsActive() bool {
	return r.status == RecurringActive
}
