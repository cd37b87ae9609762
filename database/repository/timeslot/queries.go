// File: database/repository/timeslot/queries.go
package timeslotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tutorly/models"
)

// Slots sort by date then start time; both are fixed-width strings so a
// lexicographic sort is also a chronological one.
var slotSort = bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}}

func (r *mongoTimeSlotRepo) find(ctx context.Context, filter bson.M) ([]models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(slotSort))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timeslots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.TimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding timeslots: %w", err)
	}
	return slots, nil
}

func (r *mongoTimeSlotRepo) GetByID(ctx context.Context, teacherID, slotID string) (*models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.TimeSlot
	err := r.coll.FindOne(ctx, bson.M{"id": slotID, "teacherId": teacherID}).Decode(&slot)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timeslot: %w", err)
	}
	return &slot, nil
}

func (r *mongoTimeSlotRepo) GetByTeacherAndDate(ctx context.Context, teacherID, date string) ([]models.TimeSlot, error) {
	return r.find(ctx, bson.M{"teacherId": teacherID, "date": date})
}

func (r *mongoTimeSlotRepo) GetByTeacherAndDateRange(ctx context.Context, teacherID, from, to string) ([]models.TimeSlot, error) {
	return r.find(ctx, bson.M{
		"teacherId": teacherID,
		"date":      bson.M{"$gte": from, "$lte": to},
	})
}

func (r *mongoTimeSlotRepo) GetActiveByTeacher(ctx context.Context, teacherID string) ([]models.TimeSlot, error) {
	return r.find(ctx, bson.M{"teacherId": teacherID, "isActive": true})
}

func (r *mongoTimeSlotRepo) GetTemplateSlots(ctx context.Context, teacherID, templateID string) ([]models.TimeSlot, error) {
	return r.find(ctx, bson.M{
		"teacherId":  teacherID,
		"templateId": templateID,
		"source":     models.SlotSourceTemplate,
	})
}

func (r *mongoTimeSlotRepo) GetAllTemplateSlots(ctx context.Context, teacherID string) ([]models.TimeSlot, error) {
	return r.find(ctx, bson.M{
		"teacherId":  teacherID,
		"source":     models.SlotSourceTemplate,
		"templateId": bson.M{"$ne": ""},
	})
}
