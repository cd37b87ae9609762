// File: services/availability/conflict.go
package availability

import (
	"context"

	"tutorly/models"
)

// overlaps reports whether an existing slot collides with a candidate
// [start, end) interval on the same date. An identical start time is a
// conflict even before the interval test; otherwise two slots conflict when
// one starts before the other ends and ends after the other starts.
// Back-to-back slots (end == next start) do not conflict.
func overlaps(existing models.TimeSlot, start, end string) bool {
	if existing.StartTime == start {
		return true
	}
	return existing.StartTime < end && existing.EndTime > start
}

// hasConflict checks a candidate slot against everything the teacher already
// has on that date, active or not. Inactive slots still hold their ground.
func (s *DefaultAvailabilityService) hasConflict(ctx context.Context, teacherID, date, start, end string) (bool, error) {
	slots, err := s.Slots.GetByTeacherAndDate(ctx, teacherID, date)
	if err != nil {
		return false, PersistenceError{Op: "conflict check", Err: err}
	}
	for _, slot := range slots {
		if overlaps(slot, start, end) {
			return true, nil
		}
	}
	return false, nil
}
