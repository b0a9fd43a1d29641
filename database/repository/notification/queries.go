package notificationRepo

import (
	"context"
	"errors"
	"time"

	"dermacare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListByUser returns one page of a user's notifications, newest first.
func (r *mongoNotificationRepo) ListByUser(ctx context.Context, userID string, listOpts ListOptions) ([]models.Notification, int64, error) {
	filter := bson.M{"userId": userID}
	if listOpts.UnreadOnly {
		filter["isRead"] = false
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "triggeredAt", Value: -1}}).
		SetLimit(listOpts.Limit).
		SetSkip(listOpts.Skip)

	cursor, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

// FindByReminderSince looks up a notification for a reminder inside a trigger
// window. Returns nil without error when none exists.
func (r *mongoNotificationRepo) FindByReminderSince(ctx context.Context, reminderID string, since, until time.Time) (*models.Notification, error) {
	filter := bson.M{
		"reminderId":  reminderID,
		"triggeredAt": bson.M{"$gte": since, "$lte": until},
	}

	var notification models.Notification
	err := r.coll.FindOne(ctx, filter).Decode(&notification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}
