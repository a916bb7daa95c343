// Package job provides the Job aggregate: a unit of field work (a lawn cut, a
// gutter clean) owned by exactly one account.
//
// The package includes:
//   - Job: The aggregate root that tracks lifecycle, recurrence and placement on a weekday
//   - Status: The lifecycle state machine Pending -> Scheduled -> InProgress -> Completed, plus Canceled
//   - Pattern: The recurrence cadence of a recurring job (Weekly, Biweekly, Monthly)
//   - RecurringStatus: Whether a recurring job is Active, Paused or Canceled
//
// Key business rules:
//   - A job is recurring if and only if it carries a recurrence pattern
//   - One-time jobs never carry recurrence fields; completing one clears them
//   - Completing a job stamps the service date and increments the completion count
//   - Canceling a recurring job cancels the recurrence and leaves the status as last set
package job
