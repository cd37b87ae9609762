// File: services/availability/month.go
package availability

import (
	"context"
	"time"

	"tutorly/models"
)

// MonthAvailability summarises one calendar month for a teacher. Month is
// 1-indexed. Every day of the month gets an entry, zeroed when nothing is
// scheduled; only active slots count, and a day has availability when at
// least one of its active slots has no active booking. The summary is a pure
// read and never mutates anything, so repeated calls always agree with the
// underlying slots.
func (s *DefaultAvailabilityService) MonthAvailability(ctx context.Context, teacherID string, year, month int) (*models.MonthAvailability, error) {
	if month < 1 || month > 12 {
		return nil, ValidationError{Reason: "month must be between 1 and 12"}
	}
	if year < 1 {
		return nil, ValidationError{Reason: "year must be a positive number"}
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	slots, err := s.Slots.GetByTeacherAndDateRange(ctx, teacherID, first.Format(dateLayout), last.Format(dateLayout))
	if err != nil {
		return nil, PersistenceError{Op: "load month slots", Err: err}
	}

	active := make([]models.TimeSlot, 0, len(slots))
	ids := make([]string, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsActive {
			continue
		}
		active = append(active, slot)
		ids = append(ids, slot.ID)
	}
	booked, err := s.Bookings.ActiveBySlotIDs(ctx, ids)
	if err != nil {
		return nil, PersistenceError{Op: "load month bookings", Err: err}
	}

	byDate := make(map[string]*models.DayAvailability)
	days := make([]models.DayAvailability, last.Day())
	for i := range days {
		date := first.AddDate(0, 0, i).Format(dateLayout)
		days[i] = models.DayAvailability{Date: date}
		byDate[date] = &days[i]
	}

	for _, slot := range active {
		day := byDate[slot.Date]
		day.TotalSlots++
		if len(booked[slot.ID]) > 0 {
			day.BookedSlots++
		} else {
			day.AvailableSlots++
		}
	}

	result := &models.MonthAvailability{
		TeacherID:            teacherID,
		Year:                 year,
		Month:                month,
		Days:                 days,
		DaysWithAvailability: []string{},
	}
	for _, day := range days {
		if day.AvailableSlots > 0 {
			result.DaysWithAvailability = append(result.DaysWithAvailability, day.Date)
		}
	}
	return result, nil
}
