package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "dermacare/database/repository/notification"
	"dermacare/models"
	"dermacare/utils"

	"go.uber.org/zap"
)

// DedupWindow is the range before a trigger instant within which an existing
// notification for the same reminder suppresses a new one. It matches the
// scheduler poll interval, so a reminder observed due on two consecutive
// scans cannot produce two notifications.
const DedupWindow = 10 * time.Second

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

// ListForUser returns one page of a user's notifications, newest first.
func (s *DefaultNotificationService) ListForUser(ctx context.Context, userID string, limit, skip int64, unreadOnly bool) (*models.NotificationPage, error) {
	notifications, total, err := s.Repo.ListByUser(ctx, userID, notificationRepo.ListOptions{
		Limit:      limit,
		Skip:       skip,
		UnreadOnly: unreadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return &models.NotificationPage{
		Notifications: notifications,
		Total:         total,
		Limit:         limit,
		Skip:          skip,
	}, nil
}

// MarkRead flips one notification to read, owner-scoped.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, id, userID string) (*models.Notification, error) {
	return s.Repo.MarkRead(ctx, id, userID)
}

// MarkAllRead flips all of a user's unread notifications and returns the
// number updated.
func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return s.Repo.MarkAllRead(ctx, userID)
}

// RecordTrigger writes the notification for a reminder firing at now, unless
// one already exists for this reminder inside the dedup window.
func (s *DefaultNotificationService) RecordTrigger(ctx context.Context, r *models.Reminder, now time.Time) (bool, error) {
	existing, err := s.Repo.FindByReminderSince(ctx, r.ID, now.Add(-DedupWindow), now)
	if err != nil {
		return false, fmt.Errorf("dedup lookup for reminder %s: %w", r.ID, err)
	}
	if existing != nil {
		utils.GetLogger().Debug("Notification already recorded for trigger window",
			zap.String("reminderId", r.ID),
			zap.Time("triggeredAt", existing.TriggeredAt))
		return false, nil
	}

	message := r.CustomMessage
	if message == "" {
		message = fmt.Sprintf("Reminder: %s", r.Title)
	}

	_, err = s.Repo.Create(ctx, models.Notification{
		UserID:      r.UserID,
		ReminderID:  r.ID,
		Title:       r.Title,
		Message:     message,
		Type:        models.NotificationTypeReminder,
		IsRead:      false,
		TriggeredAt: now,
	})
	if err != nil {
		return false, fmt.Errorf("create notification for reminder %s: %w", r.ID, err)
	}
	return true, nil
}
