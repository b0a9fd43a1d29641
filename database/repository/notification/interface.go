package notificationRepo

import (
	"context"
	"time"

	"dermacare/database"
	"dermacare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ListOptions controls pagination of a user's notifications.
type ListOptions struct {
	Limit      int64
	Skip       int64
	UnreadOnly bool
}

// NotificationRepository persists triggered reminder notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification models.Notification) (string, error)

	// ListByUser returns a page of notifications sorted by triggeredAt
	// descending, plus the total matching count.
	ListByUser(ctx context.Context, userID string, opts ListOptions) ([]models.Notification, int64, error)

	// FindByReminderSince returns a notification for the given reminder with
	// triggeredAt in [since, until], or nil if none exists.
	FindByReminderSince(ctx context.Context, reminderID string, since, until time.Time) (*models.Notification, error)

	MarkRead(ctx context.Context, id, userID string) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)

	EnsureIndexes() error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo returns a NotificationRepository backed by MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	return &mongoNotificationRepo{
		coll: database.DB().Collection("notifications"),
	}
}
