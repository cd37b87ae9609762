// File: database/repository/timeslot/crud.go
package timeslotRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tutorly/models"
)

const duplicateKeyCode = 11000

func (r *mongoTimeSlotRepo) Insert(ctx context.Context, slot *models.TimeSlot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return fmt.Errorf("failed to insert timeslot: %w", err)
	}
	return nil
}

// InsertMany writes the batch unordered so a duplicate-key collision on the
// (teacherId, date, startTime) index drops only the colliding row. The
// returned count is the number of rows actually written; callers must treat
// it as authoritative rather than assuming it equals len(slots).
func (r *mongoTimeSlotRepo) InsertMany(ctx context.Context, slots []models.TimeSlot) (int, error) {
	if len(slots) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	docs := make([]interface{}, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		docs[i] = slot
	}

	opts := options.InsertMany().SetOrdered(false)
	res, err := r.coll.InsertMany(ctx, docs, opts)
	if err != nil {
		bwe, ok := err.(mongo.BulkWriteException)
		if !ok {
			return 0, fmt.Errorf("bulk insert failed: %w", err)
		}
		for _, we := range bwe.WriteErrors {
			if we.Code != duplicateKeyCode {
				return 0, fmt.Errorf("bulk insert failed: %w", err)
			}
		}
		// Every write error was a duplicate; the rest of the batch landed.
		return len(docs) - len(bwe.WriteErrors), nil
	}
	return len(res.InsertedIDs), nil
}

func (r *mongoTimeSlotRepo) SetActive(ctx context.Context, slotID string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isActive": active, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": slotID}, update)
	if err != nil {
		return fmt.Errorf("failed to update timeslot active flag: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoTimeSlotRepo) Update(ctx context.Context, slot *models.TimeSlot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": slot.ID, "teacherId": slot.TeacherID}
	update := bson.M{"$set": bson.M{
		"date":      slot.Date,
		"startTime": slot.StartTime,
		"endTime":   slot.EndTime,
		"duration":  slot.Duration,
		"updatedAt": slot.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update timeslot: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoTimeSlotRepo) DeleteByID(ctx context.Context, teacherID, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": slotID, "teacherId": teacherID})
	if err != nil {
		return fmt.Errorf("failed to delete timeslot: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoTimeSlotRepo) DeleteByTemplateID(ctx context.Context, teacherID, templateID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"teacherId":  teacherID,
		"templateId": templateID,
		"source":     models.SlotSourceTemplate,
	}
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete template slots: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *mongoTimeSlotRepo) DeleteManyByIDs(ctx context.Context, teacherID string, slotIDs []string) (int64, error) {
	if len(slotIDs) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"teacherId": teacherID, "id": bson.M{"$in": slotIDs}}
	res, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete timeslots: %w", err)
	}
	return res.DeletedCount, nil
}
