package models

import "time"

// SlotSource tells how a time slot came to exist.
type SlotSource string

const (
	// SlotSourceManual marks a slot created one-off for a single date.
	SlotSourceManual SlotSource = "MANUAL"
	// SlotSourceTemplate marks a slot produced by a recurring template expansion.
	SlotSourceTemplate SlotSource = "TEMPLATE"
)

// TimeSlot represents a teacher's bookable window on one calendar day.
// Date is a plain "2006-01-02" string (no time-of-day, no timezone offset);
// StartTime/EndTime are zero-padded "HH:MM" wall-clock strings so they stay
// human-readable and lexicographically comparable.
type TimeSlot struct {
	ID         string     `bson:"id" json:"id"`
	TeacherID  string     `bson:"teacherId" json:"teacherId"`
	Date       string     `bson:"date" json:"date"`
	StartTime  string     `bson:"startTime" json:"startTime"`
	EndTime    string     `bson:"endTime" json:"endTime"`
	Duration   int        `bson:"duration" json:"duration"` // minutes; EndTime = StartTime + Duration
	Source     SlotSource `bson:"source" json:"source"`
	TemplateID string     `bson:"templateId,omitempty" json:"templateId,omitempty"` // set iff Source is TEMPLATE
	IsActive   bool       `bson:"isActive" json:"isActive"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// TimeSlotWithBookings is the read-side view of a slot together with its
// active (non-cancelled) bookings.
type TimeSlotWithBookings struct {
	TimeSlot `bson:",inline"`
	Bookings []Booking `json:"bookings"`
}

// IsBooked reports whether the slot carries at least one active booking.
func (s TimeSlotWithBookings) IsBooked() bool {
	return len(s.Bookings) > 0
}
