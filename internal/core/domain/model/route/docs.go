// Package route provides the Route aggregate: one slot of an account's weekly
// schedule, identified by a weekday and a dense zero-based index.
//
// The package includes:
//   - Route: An ordered job list with a display name and an assignee
//   - Assignee: A tagged variant of nobody, one employee or one crew
//   - Reindex: The single compaction routine shared by slot deletion and rescheduling
//   - WeekPlan: A validated whole-week submission used by the atomic week replace
package route
