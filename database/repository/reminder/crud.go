package reminderRepo

import (
	"context"
	"errors"
	"time"

	"dermacare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a reminder does not exist or is not owned by
// the caller.
var ErrNotFound = errors.New("reminder not found")

// Create inserts a new reminder and returns its ID.
func (r *mongoReminderRepo) Create(ctx context.Context, reminder models.Reminder) (string, error) {
	if reminder.ID == "" {
		reminder.ID = uuid.New().String()
	}
	reminder.CreatedAt = time.Now()
	reminder.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, reminder)
	if err != nil {
		return "", err
	}
	return reminder.ID, nil
}

// GetByID returns a reminder by ID, scoped to its owner.
func (r *mongoReminderRepo) GetByID(ctx context.Context, id, userID string) (*models.Reminder, error) {
	var reminder models.Reminder
	err := r.coll.FindOne(ctx, bson.M{"id": id, "userId": userID}).Decode(&reminder)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reminder, nil
}

// Update replaces a reminder document, scoped to its owner.
func (r *mongoReminderRepo) Update(ctx context.Context, reminder models.Reminder) error {
	reminder.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": reminder.ID, "userId": reminder.UserID}, reminder)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a reminder by ID, scoped to its owner.
func (r *mongoReminderRepo) Delete(ctx context.Context, id, userID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
