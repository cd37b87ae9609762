// File: database/repository/timeslot/interface.go
package timeslotRepo

import (
	"context"

	"tutorly/database"
	"tutorly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TimeSlotRepository is the persistence boundary for teacher availability
// slots. Lookups are always scoped by teacher id so a foreign slot is
// indistinguishable from a missing one.
type TimeSlotRepository interface {
	Insert(ctx context.Context, slot *models.TimeSlot) error
	// InsertMany bulk-inserts with skip-duplicate semantics: rows violating
	// the (teacherId, date, startTime) unique index are silently dropped and
	// the returned count reflects what was actually written.
	InsertMany(ctx context.Context, slots []models.TimeSlot) (int, error)

	// GetByID returns (nil, nil) when no slot matches the teacher and id.
	GetByID(ctx context.Context, teacherID, slotID string) (*models.TimeSlot, error)
	GetByTeacherAndDate(ctx context.Context, teacherID, date string) ([]models.TimeSlot, error)
	GetByTeacherAndDateRange(ctx context.Context, teacherID, from, to string) ([]models.TimeSlot, error)
	GetActiveByTeacher(ctx context.Context, teacherID string) ([]models.TimeSlot, error)
	GetTemplateSlots(ctx context.Context, teacherID, templateID string) ([]models.TimeSlot, error)
	GetAllTemplateSlots(ctx context.Context, teacherID string) ([]models.TimeSlot, error)

	SetActive(ctx context.Context, slotID string, active bool) error
	Update(ctx context.Context, slot *models.TimeSlot) error

	DeleteByID(ctx context.Context, teacherID, slotID string) error
	DeleteByTemplateID(ctx context.Context, teacherID, templateID string) (int64, error)
	DeleteManyByIDs(ctx context.Context, teacherID string, slotIDs []string) (int64, error)

	EnsureIndexes() error
}

type mongoTimeSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoTimeSlotRepo constructs a new MongoDB TimeSlotRepository.
func NewMongoTimeSlotRepo() TimeSlotRepository {
	return &mongoTimeSlotRepo{
		coll: database.DB().Collection("timeslots"),
	}
}
