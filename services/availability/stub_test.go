// File: services/availability/stub_test.go
package availability

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"tutorly/models"
)

// memSlotRepo is an in-memory TimeSlotRepository with the same semantics as
// the MongoDB implementation, including the unique (teacher, date, start)
// constraint that backs skip-duplicate bulk inserts.
type memSlotRepo struct {
	mu    sync.Mutex
	slots map[string]models.TimeSlot
}

func newMemSlotRepo() *memSlotRepo {
	return &memSlotRepo{slots: make(map[string]models.TimeSlot)}
}

func slotKey(s models.TimeSlot) string {
	return s.TeacherID + "|" + s.Date + "|" + s.StartTime
}

func (r *memSlotRepo) hasKey(key, excludeID string) bool {
	for _, s := range r.slots {
		if s.ID != excludeID && slotKey(s) == key {
			return true
		}
	}
	return false
}

func (r *memSlotRepo) Insert(_ context.Context, slot *models.TimeSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if r.hasKey(slotKey(*slot), slot.ID) {
		return fmt.Errorf("duplicate key: %s", slotKey(*slot))
	}
	r.slots[slot.ID] = *slot
	return nil
}

func (r *memSlotRepo) InsertMany(_ context.Context, slots []models.TimeSlot) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inserted := 0
	for _, slot := range slots {
		if r.hasKey(slotKey(slot), slot.ID) {
			continue
		}
		r.slots[slot.ID] = slot
		inserted++
	}
	return inserted, nil
}

func (r *memSlotRepo) GetByID(_ context.Context, teacherID, slotID string) (*models.TimeSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[slotID]
	if !ok || slot.TeacherID != teacherID {
		return nil, nil
	}
	return &slot, nil
}

func (r *memSlotRepo) filter(match func(models.TimeSlot) bool) []models.TimeSlot {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.TimeSlot
	for _, s := range r.slots {
		if match(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

func (r *memSlotRepo) GetByTeacherAndDate(_ context.Context, teacherID, date string) ([]models.TimeSlot, error) {
	return r.filter(func(s models.TimeSlot) bool {
		return s.TeacherID == teacherID && s.Date == date
	}), nil
}

func (r *memSlotRepo) GetByTeacherAndDateRange(_ context.Context, teacherID, from, to string) ([]models.TimeSlot, error) {
	return r.filter(func(s models.TimeSlot) bool {
		return s.TeacherID == teacherID && s.Date >= from && s.Date <= to
	}), nil
}

func (r *memSlotRepo) GetActiveByTeacher(_ context.Context, teacherID string) ([]models.TimeSlot, error) {
	return r.filter(func(s models.TimeSlot) bool {
		return s.TeacherID == teacherID && s.IsActive
	}), nil
}

func (r *memSlotRepo) GetTemplateSlots(_ context.Context, teacherID, templateID string) ([]models.TimeSlot, error) {
	return r.filter(func(s models.TimeSlot) bool {
		return s.TeacherID == teacherID && s.TemplateID == templateID && s.Source == models.SlotSourceTemplate
	}), nil
}

func (r *memSlotRepo) GetAllTemplateSlots(_ context.Context, teacherID string) ([]models.TimeSlot, error) {
	return r.filter(func(s models.TimeSlot) bool {
		return s.TeacherID == teacherID && s.Source == models.SlotSourceTemplate && s.TemplateID != ""
	}), nil
}

func (r *memSlotRepo) SetActive(_ context.Context, slotID string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[slotID]
	if !ok {
		return fmt.Errorf("slot %s not found", slotID)
	}
	slot.IsActive = active
	slot.UpdatedAt = time.Now().UTC()
	r.slots[slotID] = slot
	return nil
}

func (r *memSlotRepo) Update(_ context.Context, slot *models.TimeSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.slots[slot.ID]
	if !ok || stored.TeacherID != slot.TeacherID {
		return fmt.Errorf("slot %s not found", slot.ID)
	}
	if r.hasKey(slotKey(*slot), slot.ID) {
		return fmt.Errorf("duplicate key: %s", slotKey(*slot))
	}
	r.slots[slot.ID] = *slot
	return nil
}

func (r *memSlotRepo) DeleteByID(_ context.Context, teacherID, slotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[slotID]
	if !ok || slot.TeacherID != teacherID {
		return fmt.Errorf("slot %s not found", slotID)
	}
	delete(r.slots, slotID)
	return nil
}

func (r *memSlotRepo) DeleteByTemplateID(_ context.Context, teacherID, templateID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, s := range r.slots {
		if s.TeacherID == teacherID && s.TemplateID == templateID && s.Source == models.SlotSourceTemplate {
			delete(r.slots, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *memSlotRepo) DeleteManyByIDs(_ context.Context, teacherID string, slotIDs []string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for _, id := range slotIDs {
		if s, ok := r.slots[id]; ok && s.TeacherID == teacherID {
			delete(r.slots, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *memSlotRepo) EnsureIndexes() error { return nil }

func (r *memSlotRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}

// memBookingRepo maps slot ids to bookings and filters out cancelled ones,
// mirroring the read-only MongoDB BookingRepository.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string][]models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string][]models.Booking)}
}

func (r *memBookingRepo) add(slotID string, status models.BookingStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[slotID] = append(r.bookings[slotID], models.Booking{
		ID:         uuid.New().String(),
		StudentID:  "student-1",
		TimeSlotID: slotID,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	})
}

func (r *memBookingRepo) ActiveBySlotID(_ context.Context, slotID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var active []models.Booking
	for _, b := range r.bookings[slotID] {
		if b.Status.IsActive() {
			active = append(active, b)
		}
	}
	return active, nil
}

func (r *memBookingRepo) ActiveBySlotIDs(_ context.Context, slotIDs []string) (map[string][]models.Booking, error) {
	result := make(map[string][]models.Booking)
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range slotIDs {
		for _, b := range r.bookings[id] {
			if b.Status.IsActive() {
				result[id] = append(result[id], b)
			}
		}
	}
	return result, nil
}

func newTestService() (*DefaultAvailabilityService, *memSlotRepo, *memBookingRepo) {
	slots := newMemSlotRepo()
	bookings := newMemBookingRepo()
	return NewAvailabilityService(slots, bookings), slots, bookings
}
