package notify

import (
	"context"
	"fmt"

	"dermacare/models"
	"dermacare/utils"

	"go.uber.org/zap"
)

// ReminderSource fetches the backend's view of the user's reminders.
type ReminderSource interface {
	Reminders(ctx context.Context) ([]models.Reminder, error)
}

// LocalScheduler abstracts the OS-level local notification API. Scheduled
// notifications are tagged with their originating reminder ID.
type LocalScheduler interface {
	// Scheduled returns currently scheduled local notification identifiers,
	// grouped by reminder ID.
	Scheduled(ctx context.Context) (map[string][]string, error)
	Schedule(ctx context.Context, r models.Reminder) error
	Cancel(ctx context.Context, reminderID string) error
	CancelAll(ctx context.Context) error
}

// SyncReminders reconciles OS-scheduled local notifications against backend
// reminder state: schedules for deleted or inactive reminders are cancelled,
// and active reminders with no schedule get one. Per-reminder failures are
// logged and skipped so one bad entry cannot stall the rest.
func SyncReminders(ctx context.Context, src ReminderSource, sched LocalScheduler) error {
	logger := utils.GetLogger()

	reminders, err := src.Reminders(ctx)
	if err != nil {
		return fmt.Errorf("sync reminders: fetch backend state: %w", err)
	}
	scheduled, err := sched.Scheduled(ctx)
	if err != nil {
		return fmt.Errorf("sync reminders: read local schedules: %w", err)
	}

	active := make(map[string]models.Reminder)
	for _, r := range reminders {
		if r.IsActive {
			active[r.ID] = r
		}
	}

	// Cancel schedules whose reminder is gone or inactive.
	for reminderID := range scheduled {
		if _, ok := active[reminderID]; ok {
			continue
		}
		if err := sched.Cancel(ctx, reminderID); err != nil {
			logger.Warn("Failed to cancel stale local schedule",
				zap.String("reminderId", reminderID), zap.Error(err))
		}
	}

	// Schedule active reminders that have no local notifications.
	for id, r := range active {
		if _, ok := scheduled[id]; ok {
			continue
		}
		if err := sched.Schedule(ctx, r); err != nil {
			logger.Warn("Failed to schedule local notifications",
				zap.String("reminderId", id), zap.Error(err))
		}
	}

	logger.Debug("Reminder sync completed", zap.Int("active", len(active)))
	return nil
}

// ForceSyncReminders unconditionally clears all local schedules and rebuilds
// them from the backend list. Used for explicit user-triggered refresh, not
// normal operation.
func ForceSyncReminders(ctx context.Context, src ReminderSource, sched LocalScheduler) error {
	if err := sched.CancelAll(ctx); err != nil {
		return fmt.Errorf("force sync: clear local schedules: %w", err)
	}

	reminders, err := src.Reminders(ctx)
	if err != nil {
		return fmt.Errorf("force sync: fetch backend state: %w", err)
	}
	for _, r := range reminders {
		if !r.IsActive {
			continue
		}
		if err := sched.Schedule(ctx, r); err != nil {
			return fmt.Errorf("force sync: schedule reminder %s: %w", r.ID, err)
		}
	}
	return nil
}
