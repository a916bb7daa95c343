package route

import (
	"fmt"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
)

// AssigneeKind tags which variant an Assignee holds.
type AssigneeKind int

const (
	Unassigned AssigneeKind = iota
	EmployeeAssigned
	CrewAssigned
)

func (k AssigneeKind) String() string {
	switch k {
	case EmployeeAssigned:
		return "Employee"
	case CrewAssigned:
		return "Crew"
	default:
		return "None"
	}
}

// Assignee is either nobody, one employee or one crew. Holding a single id
// behind a tag makes "employee and crew at once" unrepresentable.
type Assignee struct {
	kind AssigneeKind
	id   kernel.UUID
}

func NoAssignee() Assignee {
	return Assignee{}
}

func Employee(id kernel.UUID) (Assignee, error) {
	if err := id.Validate(); err != nil {
		return Assignee{}, err
	}
	return Assignee{kind: EmployeeAssigned, id: id}, nil
}

func Crew(id kernel.UUID) (Assignee, error) {
	if err := id.Validate(); err != nil {
		return Assignee{}, err
	}
	return Assignee{kind: CrewAssigned, id: id}, nil
}

// AssigneeFromIDs builds the variant from the two optional ids callers and
// storage use. Supplying both is a conflict.
func AssigneeFromIDs(employeeID, crewID *kernel.UUID) (Assignee, error) {
	switch {
	case employeeID != nil && crewID != nil:
		return Assignee{}, errs.NewConflictErrorWithCause(
			"assignee",
			fmt.Errorf("employee %s and crew %s cannot both be assigned", employeeID, crewID),
		)
	case employeeID != nil:
		return Employee(*employeeID)
	case crewID != nil:
		return Crew(*crewID)
	default:
		return NoAssignee(), nil
	}
}

func (a Assignee) Kind() AssigneeKind {
	return a.kind
}

func (a Assignee) IsNone() bool {
	return a.kind == Unassigned
}

// EmployeeID returns the employee id or nil.
func (a Assignee) EmployeeID() *kernel.UUID {
	if a.kind != EmployeeAssigned {
		return nil
	}
	return a.id.Ptr()
}

// CrewID returns the crew id or nil.
func (a Assignee) CrewID() *kernel.UUID {
	if a.kind != CrewAssigned {
		return nil
	}
	return a.id.Ptr()
}

func (a Assignee) IsEqual(other Assignee) bool {
	return a.kind == other.kind && a.id.IsEqual(other.id)
}
