package reminderRepo

import (
	"context"
	"time"

	"dermacare/database"
	"dermacare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReminderRepository persists user reminders.
type ReminderRepository interface {
	Create(ctx context.Context, reminder models.Reminder) (string, error)
	GetByID(ctx context.Context, id, userID string) (*models.Reminder, error)
	GetByUser(ctx context.Context, userID string) ([]models.Reminder, error)
	Update(ctx context.Context, reminder models.Reminder) error
	Delete(ctx context.Context, id, userID string) error

	// FindDue returns all active reminders whose next trigger time is at or
	// before now. No ordering guarantee.
	FindDue(ctx context.Context, now time.Time) ([]models.Reminder, error)

	// SetTriggerState updates only the trigger-derived fields of a reminder.
	SetTriggerState(ctx context.Context, id string, next *time.Time, isActive bool) error

	EnsureIndexes() error
}

type mongoReminderRepo struct {
	coll *mongo.Collection
}

// NewMongoReminderRepo returns a ReminderRepository backed by MongoDB.
func NewMongoReminderRepo() ReminderRepository {
	return &mongoReminderRepo{
		coll: database.DB().Collection("reminders"),
	}
}
