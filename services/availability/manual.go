// File: services/availability/manual.go
package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tutorly/models"
)

// CreateManualSlot validates and persists one ad-hoc slot. The end time is
// always derived from start + duration, never taken from the caller.
func (s *DefaultAvailabilityService) CreateManualSlot(ctx context.Context, teacherID string, req models.ManualSlotRequest) (*models.TimeSlotWithBookings, error) {
	if req.Duration <= 0 {
		return nil, ValidationError{Reason: "duration must be a positive number of minutes"}
	}
	if _, err := ParseDate(req.Date); err != nil {
		return nil, ValidationError{Reason: err.Error()}
	}
	endTime, err := AddMinutes(req.StartTime, req.Duration)
	if err != nil {
		return nil, ValidationError{Reason: err.Error()}
	}

	conflict, err := s.hasConflict(ctx, teacherID, req.Date, req.StartTime, endTime)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ConflictError{Date: req.Date, StartTime: req.StartTime, EndTime: endTime}
	}

	now := time.Now().UTC()
	slot := models.TimeSlot{
		ID:        uuid.New().String(),
		TeacherID: teacherID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   endTime,
		Duration:  req.Duration,
		Source:    models.SlotSourceManual,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Slots.Insert(ctx, &slot); err != nil {
		return nil, PersistenceError{Op: "create manual slot", Err: err}
	}

	return &models.TimeSlotWithBookings{TimeSlot: slot, Bookings: []models.Booking{}}, nil
}
