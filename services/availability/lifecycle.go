// File: services/availability/lifecycle.go
package availability

import (
	"context"
	"fmt"
	"time"

	"tutorly/models"
)

// ToggleSlotActive flips a slot between active and inactive. An active slot
// with active bookings cannot be deactivated; reactivating is always allowed.
func (s *DefaultAvailabilityService) ToggleSlotActive(ctx context.Context, teacherID, slotID string) (*models.TimeSlotWithBookings, error) {
	slot, err := s.requireOwnedSlot(ctx, teacherID, slotID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.ActiveBySlotID(ctx, slotID)
	if err != nil {
		return nil, PersistenceError{Op: "check slot bookings", Err: err}
	}
	if slot.IsActive && len(bookings) > 0 {
		return nil, BookingConflictError{Reason: "cannot deactivate a time slot with active bookings"}
	}

	slot.IsActive = !slot.IsActive
	slot.UpdatedAt = time.Now().UTC()
	if err := s.Slots.SetActive(ctx, slotID, slot.IsActive); err != nil {
		return nil, PersistenceError{Op: "toggle slot", Err: err}
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}
	return &models.TimeSlotWithBookings{TimeSlot: *slot, Bookings: bookings}, nil
}

// UpdateSlot reschedules an unbooked slot. Zero-valued request fields keep
// the stored values; the end time is always recomputed from the effective
// start and duration. Returns the updated slot and the date it previously
// occupied.
func (s *DefaultAvailabilityService) UpdateSlot(ctx context.Context, teacherID, slotID string, req models.UpdateSlotRequest) (*models.TimeSlotWithBookings, string, error) {
	slot, err := s.requireOwnedSlot(ctx, teacherID, slotID)
	if err != nil {
		return nil, "", err
	}
	previousDate := slot.Date

	bookings, err := s.Bookings.ActiveBySlotID(ctx, slotID)
	if err != nil {
		return nil, "", PersistenceError{Op: "check slot bookings", Err: err}
	}
	if len(bookings) > 0 {
		return nil, "", BookingConflictError{Reason: "cannot reschedule a time slot with active bookings"}
	}

	if req.Date != "" {
		if _, err := ParseDate(req.Date); err != nil {
			return nil, "", ValidationError{Reason: err.Error()}
		}
		slot.Date = req.Date
	}
	if req.StartTime != "" {
		slot.StartTime = req.StartTime
	}
	if req.Duration != 0 {
		if req.Duration < 0 {
			return nil, "", ValidationError{Reason: "duration must be a positive number of minutes"}
		}
		slot.Duration = req.Duration
	}
	endTime, err := AddMinutes(slot.StartTime, slot.Duration)
	if err != nil {
		return nil, "", ValidationError{Reason: err.Error()}
	}
	slot.EndTime = endTime
	slot.UpdatedAt = time.Now().UTC()

	if err := s.Slots.Update(ctx, slot); err != nil {
		return nil, "", PersistenceError{Op: "update slot", Err: err}
	}
	return &models.TimeSlotWithBookings{TimeSlot: *slot, Bookings: []models.Booking{}}, previousDate, nil
}

// DeleteSlot removes one slot. Active bookings block the delete whether the
// slot is active or not: students keep their reservation either way.
func (s *DefaultAvailabilityService) DeleteSlot(ctx context.Context, teacherID, slotID string) (*models.TimeSlot, error) {
	slot, err := s.requireOwnedSlot(ctx, teacherID, slotID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.ActiveBySlotID(ctx, slotID)
	if err != nil {
		return nil, PersistenceError{Op: "check slot bookings", Err: err}
	}
	if len(bookings) > 0 {
		return nil, BookingConflictError{Reason: "cannot delete a time slot with active bookings"}
	}

	if err := s.Slots.DeleteByID(ctx, teacherID, slotID); err != nil {
		return nil, PersistenceError{Op: "delete slot", Err: err}
	}
	return slot, nil
}

// DeleteSlots removes a batch of slots, all or nothing. Every id must resolve
// to a slot the teacher owns, and none of them may carry active bookings.
func (s *DefaultAvailabilityService) DeleteSlots(ctx context.Context, teacherID string, slotIDs []string) ([]models.TimeSlot, error) {
	if len(slotIDs) == 0 {
		return nil, ValidationError{Reason: "at least one slot id is required"}
	}

	slots := make([]models.TimeSlot, 0, len(slotIDs))
	for _, id := range slotIDs {
		slot, err := s.requireOwnedSlot(ctx, teacherID, id)
		if err != nil {
			return nil, err
		}
		slots = append(slots, *slot)
	}

	booked, err := s.Bookings.ActiveBySlotIDs(ctx, slotIDs)
	if err != nil {
		return nil, PersistenceError{Op: "check slot bookings", Err: err}
	}
	if len(booked) > 0 {
		return nil, BookingConflictError{
			Reason:       fmt.Sprintf("cannot delete: %d of the selected slots have active bookings", len(booked)),
			BlockedSlots: len(booked),
		}
	}

	if _, err := s.Slots.DeleteManyByIDs(ctx, teacherID, slotIDs); err != nil {
		return nil, PersistenceError{Op: "delete slots", Err: err}
	}
	return slots, nil
}
