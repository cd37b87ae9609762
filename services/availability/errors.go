// File: services/availability/errors.go
package availability

import "fmt"

// ValidationError reports malformed input. It is never retried and the
// reason is surfaced verbatim to the caller.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// ConflictError reports that a candidate slot overlaps an existing one.
type ConflictError struct {
	Date      string
	StartTime string
	EndTime   string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("an overlapping time slot already exists on %s between %s and %s",
		e.Date, e.StartTime, e.EndTime)
}

// NoSlotsCreatedError reports that a template expansion staged nothing.
// ConflictCount distinguishes "every candidate collided" from "no candidate
// matched the requested days and window at all".
type NoSlotsCreatedError struct {
	ConflictCount int
}

func (e NoSlotsCreatedError) Error() string {
	if e.ConflictCount > 0 {
		return fmt.Sprintf("no new slots created: %d requested slots already exist at the requested times", e.ConflictCount)
	}
	return "no slots to create for the requested days and time window"
}

// NotFoundError covers both a genuinely missing record and a record owned by
// another teacher; the two cases are deliberately indistinguishable.
type NotFoundError struct {
	Kind string // "time slot" or "template"
}

func (e NotFoundError) Error() string {
	return e.Kind + " not found"
}

// BookingConflictError reports an attempted deactivation or deletion blocked
// by active bookings. BlockedSlots is set for template-wide checks.
type BookingConflictError struct {
	Reason       string
	BlockedSlots int
}

func (e BookingConflictError) Error() string {
	return e.Reason
}

// PersistenceError wraps a storage failure. The operation is not retried
// internally; the caller gets a generic failure and may retry where safe.
type PersistenceError struct {
	Op  string
	Err error
}

func (e PersistenceError) Error() string {
	return fmt.Sprintf("%s: storage operation failed: %v", e.Op, e.Err)
}

func (e PersistenceError) Unwrap() error {
	return e.Err
}
