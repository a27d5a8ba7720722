package order

import (
	"fmt"

	"customerorder/internal/pkg/errs"
)

// Status is the order's free-form lifecycle label. There is no transition graph:
// any valid status may be replaced by any other, including itself.
type Status int

const (
	// Unset means the status has never been written.
	Unset Status = iota
	Pending
	Completed
	Cancelled
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Completed: "completed",
	Cancelled: "cancelled",
}

// ParseStatus converts the wire value into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unset, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of pending, completed, cancelled", s),
	)
}

// String returns the wire value, or "" for Unset.
func (s Status) String() string {
	return statusNames[s]
}

// IsSet reports whether a status has been written.
func (s Status) IsSet() bool {
	return s != Unset
}

// Validate accepts Unset and the three named statuses.
func (s Status) Validate() error {
	if s == Unset {
		return nil
	}
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}
