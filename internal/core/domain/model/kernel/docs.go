// Package kernel provides the domain primitives shared by every aggregate of
// the field service scheduling core.
//
// The package includes:
//   - UUID: A value object for identifiers of jobs, routes, accounts, employees and crews
//   - Weekday: The seven days a route slot can be planned on
//
// These primitives are immutable and validate themselves, so aggregates only
// ever hold well-formed identifiers and weekdays.
package kernel
