package job

import (
	"fmt"

	"fieldservice/internal/pkg/errs"
)

// Status represents the lifecycle state of a job.
//
// State transitions:
//
//	Pending ──> Scheduled ──> InProgress ──> Completed
//	   │            │                            │
//	   └────────────┴──> Canceled                └──> Scheduled (recurring only)
//
// Completed is terminal for one-time jobs. Recurring jobs leave Completed when
// they are placed on a route again.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every new job.
	Pending

	// Scheduled indicates the job was placed in a route slot.
	Scheduled

	// InProgress indicates field work on the job has started.
	InProgress

	// Completed indicates the job was serviced.
	Completed

	// Canceled is the terminal status of a canceled one-time job.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Scheduled:  "Scheduled",
		InProgress: "InProgress",
		Completed:  "Completed",
		Canceled:   "Canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Scheduled:  "Scheduled",
		InProgress: "InProgress",
		Completed:  "Completed",
		Canceled:   "Canceled",
	}
}

// ParseStatus converts the external representation of a status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Unknown (0) and any value outside the declared constants are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsOpen reports whether the job may still be placed in the pool: Pending or Scheduled.
func (s Status) IsOpen() bool {
	return s == Pending || s == Scheduled
}
