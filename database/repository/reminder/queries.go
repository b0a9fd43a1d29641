package reminderRepo

import (
	"context"
	"time"

	"dermacare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByUser fetches all reminders for a user, newest first.
func (r *mongoReminderRepo) GetByUser(ctx context.Context, userID string) ([]models.Reminder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reminders []models.Reminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// FindDue returns active reminders whose nextTriggerTime has passed.
func (r *mongoReminderRepo) FindDue(ctx context.Context, now time.Time) ([]models.Reminder, error) {
	filter := bson.M{
		"isActive":        true,
		"nextTriggerTime": bson.M{"$lte": now},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reminders []models.Reminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// SetTriggerState updates the trigger-derived fields of a reminder in place.
// A nil next clears nextTriggerTime.
func (r *mongoReminderRepo) SetTriggerState(ctx context.Context, id string, next *time.Time, isActive bool) error {
	set := bson.M{
		"isActive":  isActive,
		"updatedAt": time.Now(),
	}
	update := bson.M{"$set": set}
	if next != nil {
		set["nextTriggerTime"] = *next
	} else {
		update["$unset"] = bson.M{"nextTriggerTime": ""}
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
