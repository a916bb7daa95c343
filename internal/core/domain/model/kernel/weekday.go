package kernel

import (
	"fmt"
	"strings"

	"fieldservice/internal/pkg/errs"
)

// Weekday identifies the day of the week a route slot belongs to.
// Unknown is the zero value and is never valid.
type Weekday int

const (
	UnknownWeekday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = map[Weekday]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// Weekdays returns the seven valid weekdays in calendar order starting on Monday.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// ParseWeekday accepts the English day name in any letter case.
func ParseWeekday(s string) (Weekday, error) {
	for day, name := range weekdayNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return day, nil
		}
	}
	return UnknownWeekday, errs.NewValueIsInvalidErrorWithCause(
		"weekday",
		fmt.Errorf("%q is not a day of the week", s),
	)
}

func (d Weekday) Validate() error {
	if _, ok := weekdayNames[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("weekday", fmt.Errorf("%d is not a valid weekday", int(d)))
	}
	return nil
}

func (d Weekday) String() string {
	if name, ok := weekdayNames[d]; ok {
		return name
	}
	return "Unknown"
}

// Ptr returns a pointer to a copy of d.
func (d Weekday) Ptr() *Weekday {
	return &d
}
