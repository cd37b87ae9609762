// File: services/availability/lifecycle_test.go
package availability

import (
	"context"
	"errors"
	"testing"

	"tutorly/models"
)

func seedSlot(t *testing.T, svc *DefaultAvailabilityService, teacherID, date, start string) *models.TimeSlotWithBookings {
	t.Helper()
	slot, err := svc.CreateManualSlot(context.Background(), teacherID, models.ManualSlotRequest{
		Date: date, StartTime: start, Duration: 60,
	})
	if err != nil {
		t.Fatalf("seeding slot failed: %v", err)
	}
	return slot
}

func TestToggleSlotActive(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	slot := seedSlot(t, svc, "teacher-1", "2026-03-02", "09:00")

	toggled, err := svc.ToggleSlotActive(ctx, "teacher-1", slot.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toggled.IsActive {
		t.Error("slot should be inactive after first toggle")
	}

	toggled, err = svc.ToggleSlotActive(ctx, "teacher-1", slot.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !toggled.IsActive {
		t.Error("slot should be active again after second toggle")
	}
}

func TestToggleBlockedForBookedActiveSlot(t *testing.T) {
	svc, _, bookings := newTestService()
	ctx := context.Background()
	slot := seedSlot(t, svc, "teacher-1", "2026-03-02", "09:00")
	bookings.add(slot.ID, models.BookingStatusConfirmed)

	_, err := svc.ToggleSlotActive(ctx, "teacher-1", slot.ID)
	var bookingErr BookingConflictError
	if !errors.As(err, &bookingErr) {
		t.Fatalf("got %v, want BookingConflictError", err)
	}
}

func TestToggleReactivatingBookedInactiveSlotAllowed(t *testing.T) {
	svc, _, bookings := newTestService()
	ctx := context.Background()
	slot := seedSlot(t, svc, "teacher-1", "2026-03-02", "09:00")

	if _, err := svc.ToggleSlotActive(ctx, "teacher-1", slot.ID); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	// A booking arriving while the slot is inactive must not trap it there.
	bookings.add(slot.ID, models.BookingStatusConfirmed)

	toggled, err := svc.ToggleSlotActive(ctx, "teacher-1", slot.ID)
	if err != nil {
		t.Fatalf("reactivation blocked: %v", err)
	}
	if !toggled.IsActive {
		t.Error("slot should be active after reactivation")
	}
}

func TestToggleCancelledBookingDoesNotBlock(t *testing.T) {
	svc, _, bookings := newTestService()
	ctx := context.Background()
	slot := seedSlot(t, svc, "teacher-1", "2026-03-02", "09:00")
	bookings.add(slot.ID, models.BookingStatusCancelled)

	if _, err := svc.ToggleSlotActive(ctx, "teacher-1", slot.ID); err != nil {
		t.Errorf("cancelled booking should not block deactivation: %v", err)
	}
}

func TestToggleForeignSlotIsNotFound(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	slot := seedSlot(t, svc, "teacher-1", "2026-03-02", "09:00")

	_, err := svc.ToggleSlotActive(ctx, "teacher-2", slot.ID)
	var notFoundErr NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("got %v, want NotFoundError for foreign slot", err)
	}
}

func TestUpdateSlotReschedules(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	slot := seedSlot(t, svc, "teacher-1", "2026-03-02", "09:00")

	updated, previousDate, err := svc.UpdateSlot(ctx, "teacher-1", slot.ID, models.UpdateSlotRequest{
		Date:      "2026-03-03",
		StartTime: "14:00",
		Duration:  90,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if previousDate != "2026-03-02" {
		t.Errorf("previous date = %q, want 2026-03-02", previousDate)
	}
	if updated.Date != "2026-03-03" || updated.StartTime != "14:00" {
		t.Errorf("slot moved to %s %s, want 2026-03-03 14:00", updated.Date, updated.StartTime)
	}
	if updated.EndTime != "15:30" {
		t.Errorf("end time = %q, want 15:30 (recomputed)", updated.EndTime)
	}
}

func TestUpdateSlotPartialChangeKeepsOtherFields(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	slot := seedSlot(t, svc, "teacher-1", "2026-03-02", "09:00")

	updated, _, err := svc.UpdateSlot(ctx, "teacher-1", slot.ID, models.UpdateSlotRequest{
		Duration: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Date != "2026-03-02" || updated.StartTime != "09:00" {
		t.Errorf("untouched fields changed: %s %s", updated.Date, updated.StartTime)
	}
	if updated.EndTime != "09:30" {
		t.Errorf("end time = %q, want 09:30", updated.EndTime)
	}
}

func TestUpdateSlotBlockedByBooking(t *testing.T) {
	svc, _, bookings := newTestService()
	ctx := context.Background()
	slot := seedSlot(t, svc, "teacher-1", "2026-03-02", "09:00")
	bookings.add(slot.ID, models.BookingStatusConfirmed)

	_, _, err := svc.UpdateSlot(ctx, "teacher-1", slot.ID, models.UpdateSlotRequest{Duration: 30})
	var bookingErr BookingConflictError
	if !errors.As(err, &bookingErr) {
		t.Fatalf("got %v, want BookingConflictError", err)
	}
}

func TestDeleteSlot(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()
	slot := seedSlot(t, svc, "teacher-1", "2026-03-02", "09:00")

	deleted, err := svc.DeleteSlot(ctx, "teacher-1", slot.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.Date != "2026-03-02" {
		t.Errorf("deleted slot date = %q, want 2026-03-02", deleted.Date)
	}
	if repo.count() != 0 {
		t.Errorf("repo holds %d slots, want 0", repo.count())
	}
}

func TestDeleteSlotBlockedByBookingEvenWhenInactive(t *testing.T) {
	svc, repo, bookings := newTestService()
	ctx := context.Background()
	slot := seedSlot(t, svc, "teacher-1", "2026-03-02", "09:00")

	if _, err := svc.ToggleSlotActive(ctx, "teacher-1", slot.ID); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	bookings.add(slot.ID, models.BookingStatusConfirmed)

	_, err := svc.DeleteSlot(ctx, "teacher-1", slot.ID)
	var bookingErr BookingConflictError
	if !errors.As(err, &bookingErr) {
		t.Fatalf("got %v, want BookingConflictError", err)
	}
	if repo.count() != 1 {
		t.Error("booked slot must not be deleted")
	}
}

func TestDeleteSlotCancelledBookingDoesNotBlock(t *testing.T) {
	svc, repo, bookings := newTestService()
	ctx := context.Background()
	slot := seedSlot(t, svc, "teacher-1", "2026-03-02", "09:00")
	bookings.add(slot.ID, models.BookingStatusCancelled)

	if _, err := svc.DeleteSlot(ctx, "teacher-1", slot.ID); err != nil {
		t.Fatalf("cancelled booking should not block delete: %v", err)
	}
	if repo.count() != 0 {
		t.Errorf("repo holds %d slots, want 0", repo.count())
	}
}

func TestDeleteSlotForeignOwnerIsNotFound(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()
	slot := seedSlot(t, svc, "teacher-1", "2026-03-02", "09:00")

	_, err := svc.DeleteSlot(ctx, "teacher-2", slot.ID)
	var notFoundErr NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
	if repo.count() != 1 {
		t.Error("foreign delete must not remove the slot")
	}
}

func TestDeleteSlotsAllOrNothing(t *testing.T) {
	svc, repo, bookings := newTestService()
	ctx := context.Background()
	first := seedSlot(t, svc, "teacher-1", "2026-03-02", "09:00")
	second := seedSlot(t, svc, "teacher-1", "2026-03-02", "10:00")
	third := seedSlot(t, svc, "teacher-1", "2026-03-03", "09:00")
	bookings.add(second.ID, models.BookingStatusConfirmed)

	_, err := svc.DeleteSlots(ctx, "teacher-1", []string{first.ID, second.ID, third.ID})
	var bookingErr BookingConflictError
	if !errors.As(err, &bookingErr) {
		t.Fatalf("got %v, want BookingConflictError", err)
	}
	if bookingErr.BlockedSlots != 1 {
		t.Errorf("blocked slots = %d, want 1", bookingErr.BlockedSlots)
	}
	if repo.count() != 3 {
		t.Errorf("repo holds %d slots, want 3 (nothing deleted)", repo.count())
	}

	deleted, err := svc.DeleteSlots(ctx, "teacher-1", []string{first.ID, third.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deleted) != 2 {
		t.Errorf("deleted %d slots, want 2", len(deleted))
	}
	if repo.count() != 1 {
		t.Errorf("repo holds %d slots, want 1", repo.count())
	}
}

func TestDeleteSlotsUnknownIDIsNotFound(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()
	slot := seedSlot(t, svc, "teacher-1", "2026-03-02", "09:00")

	_, err := svc.DeleteSlots(ctx, "teacher-1", []string{slot.ID, "missing"})
	var notFoundErr NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
	if repo.count() != 1 {
		t.Error("partial batch must not delete anything")
	}
}

func TestDeleteSlotsEmptyBatchRejected(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.DeleteSlots(context.Background(), "teacher-1", nil)
	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
}
