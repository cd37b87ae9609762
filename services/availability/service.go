// File: services/availability/service.go
package availability

import (
	"context"
	"fmt"

	bookingRepo "tutorly/database/repository/booking"
	timeslotRepo "tutorly/database/repository/timeslot"
	"tutorly/models"
)

// AvailabilityService manages a teacher's bookable time slots: manual
// creation, recurring-template expansion, lifecycle changes gated on
// bookings, and calendar summaries.
type AvailabilityService interface {
	// CreateManualSlot creates one ad-hoc slot after an overlap check.
	CreateManualSlot(ctx context.Context, teacherID string, req models.ManualSlotRequest) (*models.TimeSlotWithBookings, error)
	// CreateTemplate expands a weekly recurrence into concrete slots and
	// bulk-inserts the non-conflicting ones.
	CreateTemplate(ctx context.Context, teacherID string, req models.TemplateRequest) (*models.TemplateCreateResult, error)

	// SlotsForDate lists all of a teacher's slots on one date, with bookings.
	SlotsForDate(ctx context.Context, teacherID, date string) ([]models.TimeSlotWithBookings, error)
	// ActiveSlots lists all of a teacher's active slots, with bookings.
	ActiveSlots(ctx context.Context, teacherID string) ([]models.TimeSlotWithBookings, error)
	// TemplateGroups lists template-sourced slots grouped by template,
	// newest template first.
	TemplateGroups(ctx context.Context, teacherID string) ([]models.TemplateGroup, error)

	// ToggleSlotActive flips a slot's active flag. Deactivating a slot with
	// active bookings is refused.
	ToggleSlotActive(ctx context.Context, teacherID, slotID string) (*models.TimeSlotWithBookings, error)
	// UpdateSlot reschedules an unbooked slot. The second return value is
	// the date the slot sat on before the change, so callers can refresh
	// both affected calendar months.
	UpdateSlot(ctx context.Context, teacherID, slotID string, req models.UpdateSlotRequest) (*models.TimeSlotWithBookings, string, error)
	// DeleteSlot removes one unbooked slot and returns the removed record.
	DeleteSlot(ctx context.Context, teacherID, slotID string) (*models.TimeSlot, error)
	// DeleteSlots removes a batch of unbooked slots, all or nothing.
	DeleteSlots(ctx context.Context, teacherID string, slotIDs []string) ([]models.TimeSlot, error)
	// DeleteTemplate removes every slot of a template, all or nothing, and
	// returns the removed records.
	DeleteTemplate(ctx context.Context, teacherID, templateID string) ([]models.TimeSlot, error)

	// MonthAvailability summarises a calendar month day by day. Month is
	// 1-indexed (1 = January).
	MonthAvailability(ctx context.Context, teacherID string, year, month int) (*models.MonthAvailability, error)
}

// DefaultAvailabilityService is the production implementation backed by the
// timeslot and booking repositories.
type DefaultAvailabilityService struct {
	Slots    timeslotRepo.TimeSlotRepository
	Bookings bookingRepo.BookingRepository
}

func NewAvailabilityService(slots timeslotRepo.TimeSlotRepository, bookings bookingRepo.BookingRepository) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{Slots: slots, Bookings: bookings}
}

// attachBookings joins slots with their active bookings in one query.
func (s *DefaultAvailabilityService) attachBookings(ctx context.Context, slots []models.TimeSlot) ([]models.TimeSlotWithBookings, error) {
	ids := make([]string, 0, len(slots))
	for _, slot := range slots {
		ids = append(ids, slot.ID)
	}
	bookings, err := s.Bookings.ActiveBySlotIDs(ctx, ids)
	if err != nil {
		return nil, PersistenceError{Op: "attach bookings", Err: err}
	}

	result := make([]models.TimeSlotWithBookings, 0, len(slots))
	for _, slot := range slots {
		b := bookings[slot.ID]
		if b == nil {
			b = []models.Booking{}
		}
		result = append(result, models.TimeSlotWithBookings{TimeSlot: slot, Bookings: b})
	}
	return result, nil
}

func (s *DefaultAvailabilityService) SlotsForDate(ctx context.Context, teacherID, date string) ([]models.TimeSlotWithBookings, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, ValidationError{Reason: err.Error()}
	}
	slots, err := s.Slots.GetByTeacherAndDate(ctx, teacherID, date)
	if err != nil {
		return nil, PersistenceError{Op: "list slots for date", Err: err}
	}
	return s.attachBookings(ctx, slots)
}

func (s *DefaultAvailabilityService) ActiveSlots(ctx context.Context, teacherID string) ([]models.TimeSlotWithBookings, error) {
	slots, err := s.Slots.GetActiveByTeacher(ctx, teacherID)
	if err != nil {
		return nil, PersistenceError{Op: "list active slots", Err: err}
	}
	return s.attachBookings(ctx, slots)
}

var _ AvailabilityService = (*DefaultAvailabilityService)(nil)

// requireOwnedSlot loads a slot scoped to its owner. A missing slot and a
// slot owned by someone else both come back as NotFoundError.
func (s *DefaultAvailabilityService) requireOwnedSlot(ctx context.Context, teacherID, slotID string) (*models.TimeSlot, error) {
	slot, err := s.Slots.GetByID(ctx, teacherID, slotID)
	if err != nil {
		return nil, PersistenceError{Op: fmt.Sprintf("load slot %s", slotID), Err: err}
	}
	if slot == nil {
		return nil, NotFoundError{Kind: "time slot"}
	}
	return slot, nil
}
