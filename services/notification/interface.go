package notification

import (
	"context"
	"time"

	"dermacare/models"
)

// NotificationService exposes read-state operations and the trigger emitter
// used by the reminder scheduler.
type NotificationService interface {
	ListForUser(ctx context.Context, userID string, limit, skip int64, unreadOnly bool) (*models.NotificationPage, error)
	MarkRead(ctx context.Context, id, userID string) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)

	// RecordTrigger creates the notification for a reminder firing at now.
	// At most one notification is created per reminder per dedup window;
	// created reports whether a new record was written.
	RecordTrigger(ctx context.Context, r *models.Reminder, now time.Time) (created bool, err error)
}
