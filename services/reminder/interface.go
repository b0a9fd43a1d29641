package reminder

import (
	"context"
	"time"

	"dermacare/models"
)

// ReminderService manages user reminders and their trigger state.
type ReminderService interface {
	CreateReminder(ctx context.Context, userID string, req models.CreateReminderRequest) (*models.Reminder, error)
	GetReminders(ctx context.Context, userID string) ([]models.Reminder, error)
	GetReminderByID(ctx context.Context, id, userID string) (*models.Reminder, error)
	UpdateReminder(ctx context.Context, id, userID string, req models.UpdateReminderRequest) (*models.Reminder, error)
	DeleteReminder(ctx context.Context, id, userID string) error

	// DueReminders returns active reminders whose trigger time has passed.
	DueReminders(ctx context.Context, now time.Time) ([]models.Reminder, error)

	// AdvanceTrigger moves a fired reminder past now: one-time reminders are
	// deactivated, recurring reminders get a freshly computed trigger time.
	AdvanceTrigger(ctx context.Context, r *models.Reminder, now time.Time) error
}
