// File: services/availability/template.go
package availability

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"tutorly/models"
)

// minTemplateDays is the smallest inclusive date range a template may cover.
// Anything shorter is an ad-hoc need better served by manual slots.
const minTemplateDays = 7

func newTemplateID() string {
	frag := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("template_%d_%s", time.Now().UnixMilli(), frag)
}

func validateTemplateRequest(req models.TemplateRequest) (start, end time.Time, err error) {
	if strings.TrimSpace(req.Name) == "" {
		return start, end, ValidationError{Reason: "template name is required"}
	}
	if len(req.WeekDays) == 0 {
		return start, end, ValidationError{Reason: "at least one weekday is required"}
	}
	for _, d := range req.WeekDays {
		if d < 0 || d > 6 {
			return start, end, ValidationError{Reason: fmt.Sprintf("invalid weekday %d, expected 0 (Sunday) through 6 (Saturday)", d)}
		}
	}
	if req.Duration <= 0 {
		return start, end, ValidationError{Reason: "duration must be a positive number of minutes"}
	}
	start, perr := ParseDate(req.StartDate)
	if perr != nil {
		return start, end, ValidationError{Reason: perr.Error()}
	}
	end, perr = ParseDate(req.EndDate)
	if perr != nil {
		return start, end, ValidationError{Reason: perr.Error()}
	}
	if end.Before(start) {
		return start, end, ValidationError{Reason: "end date must not be before start date"}
	}
	if InclusiveDayCount(start, end) < minTemplateDays {
		return start, end, ValidationError{Reason: fmt.Sprintf("the date range must span at least %d days", minTemplateDays)}
	}
	return start, end, nil
}

// CreateTemplate expands a weekly recurrence into concrete slots, drops the
// ones that would overlap existing slots, and bulk-inserts the rest under a
// shared template id. Conflicts are skipped, never an error, so re-submitting
// the same template is safe.
func (s *DefaultAvailabilityService) CreateTemplate(ctx context.Context, teacherID string, req models.TemplateRequest) (*models.TemplateCreateResult, error) {
	startDate, endDate, err := validateTemplateRequest(req)
	if err != nil {
		return nil, err
	}

	pairs, err := ExpandDailySlots(req.StartTime, req.EndTime, req.Duration)
	if err != nil {
		return nil, ValidationError{Reason: err.Error()}
	}

	wanted := make(map[int]bool, len(req.WeekDays))
	for _, d := range req.WeekDays {
		wanted[d] = true
	}

	templateID := newTemplateID()
	now := time.Now().UTC()

	var staged []models.TimeSlot
	conflictCount := 0
	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		if !wanted[int(day.Weekday())] {
			continue
		}
		date := day.Format(dateLayout)
		for _, pair := range pairs {
			conflict, err := s.hasConflict(ctx, teacherID, date, pair.Start, pair.End)
			if err != nil {
				return nil, err
			}
			if conflict {
				conflictCount++
				continue
			}
			staged = append(staged, models.TimeSlot{
				ID:         uuid.New().String(),
				TeacherID:  teacherID,
				Date:       date,
				StartTime:  pair.Start,
				EndTime:    pair.End,
				Duration:   req.Duration,
				Source:     models.SlotSourceTemplate,
				TemplateID: templateID,
				IsActive:   true,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
		}
	}

	if len(staged) == 0 {
		return nil, NoSlotsCreatedError{ConflictCount: conflictCount}
	}

	created, err := s.Slots.InsertMany(ctx, staged)
	if err != nil {
		return nil, PersistenceError{Op: "create template slots", Err: err}
	}

	message := fmt.Sprintf("Template %q created with %d time slots.", req.Name, created)
	if conflictCount > 0 {
		message = fmt.Sprintf("Template %q created with %d time slots. %d slots were skipped because they overlap existing slots.",
			req.Name, created, conflictCount)
	}

	return &models.TemplateCreateResult{
		TemplateID:    templateID,
		CreatedCount:  created,
		ConflictCount: conflictCount,
		Message:       message,
	}, nil
}

// TemplateGroups returns the teacher's template-sourced slots grouped by
// template id, newest template first. A group's creation time is the earliest
// member's, so partially deleted templates keep a stable timestamp.
func (s *DefaultAvailabilityService) TemplateGroups(ctx context.Context, teacherID string) ([]models.TemplateGroup, error) {
	slots, err := s.Slots.GetAllTemplateSlots(ctx, teacherID)
	if err != nil {
		return nil, PersistenceError{Op: "list template slots", Err: err}
	}

	byTemplate := make(map[string]*models.TemplateGroup)
	for _, slot := range slots {
		group, ok := byTemplate[slot.TemplateID]
		if !ok {
			group = &models.TemplateGroup{
				TemplateID: slot.TemplateID,
				CreatedAt:  slot.CreatedAt,
			}
			byTemplate[slot.TemplateID] = group
		}
		if slot.CreatedAt.Before(group.CreatedAt) {
			group.CreatedAt = slot.CreatedAt
		}
		group.Slots = append(group.Slots, models.TemplateSlotSummary{
			Date:      slot.Date,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Duration:  slot.Duration,
			IsActive:  slot.IsActive,
		})
		group.Count++
	}

	groups := make([]models.TemplateGroup, 0, len(byTemplate))
	for _, group := range byTemplate {
		groups = append(groups, *group)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].CreatedAt.After(groups[j].CreatedAt)
	})
	return groups, nil
}

// DeleteTemplate removes every slot of a template. If any member slot has an
// active booking the whole delete is refused, so a template is never left
// half-removed.
func (s *DefaultAvailabilityService) DeleteTemplate(ctx context.Context, teacherID, templateID string) ([]models.TimeSlot, error) {
	members, err := s.Slots.GetTemplateSlots(ctx, teacherID, templateID)
	if err != nil {
		return nil, PersistenceError{Op: "load template slots", Err: err}
	}
	if len(members) == 0 {
		return nil, NotFoundError{Kind: "template"}
	}

	ids := make([]string, 0, len(members))
	for _, slot := range members {
		ids = append(ids, slot.ID)
	}
	booked, err := s.Bookings.ActiveBySlotIDs(ctx, ids)
	if err != nil {
		return nil, PersistenceError{Op: "check template bookings", Err: err}
	}
	if len(booked) > 0 {
		return nil, BookingConflictError{
			Reason:       fmt.Sprintf("cannot delete template: %d of its slots have active bookings", len(booked)),
			BlockedSlots: len(booked),
		}
	}

	if _, err := s.Slots.DeleteByTemplateID(ctx, teacherID, templateID); err != nil {
		return nil, PersistenceError{Op: "delete template slots", Err: err}
	}
	return members, nil
}
