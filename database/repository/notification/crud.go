package notificationRepo

import (
	"context"
	"errors"
	"time"

	"dermacare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a notification does not exist or is not owned
// by the caller.
var ErrNotFound = errors.New("notification not found")

// Create inserts a new notification and returns its ID.
func (r *mongoNotificationRepo) Create(ctx context.Context, notification models.Notification) (string, error) {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	if notification.TriggeredAt.IsZero() {
		notification.TriggeredAt = time.Now()
	}
	notification.CreatedAt = time.Now()
	notification.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, notification)
	if err != nil {
		return "", err
	}
	return notification.ID, nil
}

// MarkRead flips isRead on a single notification, scoped to its owner, and
// returns the updated document.
func (r *mongoNotificationRepo) MarkRead(ctx context.Context, id, userID string) (*models.Notification, error) {
	update := bson.M{"$set": bson.M{"isRead": true, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var notification models.Notification
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id, "userId": userID}, update, opts).Decode(&notification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &notification, nil
}

// MarkAllRead flips isRead on all of a user's unread notifications and
// returns the number updated.
func (r *mongoNotificationRepo) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	update := bson.M{"$set": bson.M{"isRead": true, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateMany(ctx, bson.M{"userId": userID, "isRead": false}, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
