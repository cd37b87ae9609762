package models

import "time"

// BookingStatus is owned by the booking subsystem; this service only reads it.
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusNoShow    BookingStatus = "NO_SHOW"
)

// IsActive reports whether the status still blocks slot mutation.
// Every status except CANCELLED counts as active.
func (s BookingStatus) IsActive() bool {
	return s != BookingStatusCancelled
}

// StudentRef is the minimal student projection attached to bookings.
type StudentRef struct {
	ID       string `bson:"id" json:"id"`
	Username string `bson:"username,omitempty" json:"username,omitempty"`
	Email    string `bson:"email" json:"email"`
}

// Booking references exactly one TimeSlot. The availability service never
// creates, updates, or deletes bookings; it only checks them as a gate for
// slot deactivation and deletion.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	StudentID  string        `bson:"studentId" json:"studentId"`
	TimeSlotID string        `bson:"timeSlotId" json:"timeSlotId"`
	Status     BookingStatus `bson:"status" json:"status"`
	Student    StudentRef    `bson:"student" json:"student"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
}
