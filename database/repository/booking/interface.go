// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"tutorly/database"
	"tutorly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is a read-only view over the booking subsystem's data.
// The availability service checks bookings as a gate on slot mutation and
// never writes to this collection.
type BookingRepository interface {
	// ActiveBySlotID returns the non-cancelled bookings for one slot.
	ActiveBySlotID(ctx context.Context, slotID string) ([]models.Booking, error)
	// ActiveBySlotIDs returns non-cancelled bookings grouped by slot id.
	// Slots without active bookings have no entry in the map.
	ActiveBySlotIDs(ctx context.Context, slotIDs []string) (map[string][]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a read-only MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
