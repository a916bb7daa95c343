// Package services provides domain services for the scheduling core that do
// not belong to a single aggregate.
//
// The package includes:
//   - EligibilityEngine: Decides which jobs belong in the available pool at a point in time
//   - ScheduledSet: The set of job ids currently placed in any route slot
//   - ScheduleReconciler: Aligns job placement fields with a set of routes
package services
