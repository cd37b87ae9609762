// File: database/repository/timeslot/indexes.go
package timeslotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the timeslots collection.
// The unique (teacherId, date, startTime) index doubles as the skip-duplicate
// safety net for concurrent bulk inserts: the proactive overlap check can
// race, but two slots can never land on the same start instant.
func (r *mongoTimeSlotRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on TimeSlot ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One slot per (teacher, date, start) — insert-time duplicate guard
		{
			Keys:    bson.D{{Key: "teacherId", Value: 1}, {Key: "date", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_teacher_date_start"),
		},
		// Compound index for teacherId + date + isActive (primary query pattern)
		{
			Keys:    bson.D{{Key: "teacherId", Value: 1}, {Key: "date", Value: 1}, {Key: "isActive", Value: 1}},
			Options: options.Index().SetName("teacher_date_active_idx"),
		},
		// Template group lookups
		{
			Keys:    bson.D{{Key: "teacherId", Value: 1}, {Key: "templateId", Value: 1}},
			Options: options.Index().SetName("teacher_template_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create timeslot indexes: %w", err)
	}
	return nil
}
