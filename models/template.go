package models

import "time"

// ManualSlotRequest is the payload for creating a single slot on one date.
type ManualSlotRequest struct {
	Date      string `json:"date" binding:"required"`      // "2006-01-02"
	StartTime string `json:"startTime" binding:"required"` // "HH:MM"
	Duration  int    `json:"duration" binding:"required"`  // minutes, > 0
}

// UpdateSlotRequest reschedules an existing unbooked slot. Zero values leave
// the corresponding field unchanged; the end time is always recomputed.
type UpdateSlotRequest struct {
	Date      string `json:"date,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	Duration  int    `json:"duration,omitempty"`
}

// TemplateRequest describes a weekly recurrence to expand into concrete slots.
// WeekDays uses 0=Sunday .. 6=Saturday.
type TemplateRequest struct {
	Name      string `json:"name" binding:"required"`
	WeekDays  []int  `json:"weekDays" binding:"required"`
	StartTime string `json:"startTime" binding:"required"` // daily window start, "HH:MM"
	EndTime   string `json:"endTime" binding:"required"`   // daily window end, "HH:MM"
	Duration  int    `json:"duration" binding:"required"`  // slot length in minutes
	StartDate string `json:"startDate" binding:"required"` // inclusive, "2006-01-02"
	EndDate   string `json:"endDate" binding:"required"`   // inclusive, "2006-01-02"
}

// TemplateCreateResult reports what a template expansion actually persisted.
// CreatedCount comes from the bulk insert and may be lower than the number of
// staged slots when a concurrent writer won a race; ConflictCount counts the
// candidates skipped by the proactive overlap check.
type TemplateCreateResult struct {
	TemplateID    string `json:"templateId"`
	CreatedCount  int    `json:"createdCount"`
	ConflictCount int    `json:"conflictCount"`
	Message       string `json:"message"`
}

// TemplateSlotSummary is the per-slot projection inside a template group.
type TemplateSlotSummary struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"`
	IsActive  bool   `json:"isActive"`
}

// TemplateGroup is the derived grouping of all slots sharing a template id.
type TemplateGroup struct {
	TemplateID string                `json:"templateId"`
	Slots      []TemplateSlotSummary `json:"slots"`
	Count      int                   `json:"count"`
	CreatedAt  time.Time             `json:"createdAt"` // earliest member creation time
}
