// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"tutorly/models"
)

func (r *mongoBookingRepo) ActiveBySlotID(ctx context.Context, slotID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"timeSlotId": slotID,
		"status":     bson.M{"$ne": models.BookingStatusCancelled},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) ActiveBySlotIDs(ctx context.Context, slotIDs []string) (map[string][]models.Booking, error) {
	result := make(map[string][]models.Booking)
	if len(slotIDs) == 0 {
		return result, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"timeSlotId": bson.M{"$in": slotIDs},
		"status":     bson.M{"$ne": models.BookingStatusCancelled},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	for _, b := range bookings {
		result[b.TimeSlotID] = append(result[b.TimeSlotID], b)
	}
	return result, nil
}
