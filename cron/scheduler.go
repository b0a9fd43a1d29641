package cron

import (
	"context"
	"sync"
	"time"

	"dermacare/models"
	"dermacare/services/notification"
	"dermacare/services/reminder"
	"dermacare/utils"

	"go.uber.org/zap"
)

// DefaultScanInterval is how often the scheduler polls for due reminders.
const DefaultScanInterval = 10 * time.Second

// Scheduler drives the due-reminder scan on a fixed interval. It is a
// single-process, best-effort loop: a failed or panicking scan is logged and
// the next tick runs normally.
type Scheduler struct {
	Reminders     reminder.ReminderService
	Notifications notification.NotificationService
	Interval      time.Duration

	mu      sync.Mutex
	running bool
	stop    chan struct{}
}

// NewScheduler returns a stopped scheduler. A non-positive interval falls
// back to DefaultScanInterval.
func NewScheduler(reminders reminder.ReminderService, notifications notification.NotificationService, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultScanInterval
	}
	return &Scheduler{
		Reminders:     reminders,
		Notifications: notifications,
		Interval:      interval,
	}
}

// Start runs one scan immediately, then scans every interval until Stop.
// Starting a running scheduler is a no-op.
func (s *Scheduler) Start() {
	logger := utils.GetLogger()

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logger.Info("Reminder scheduler is already running")
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	stop := s.stop
	s.mu.Unlock()

	logger.Info("Starting reminder scheduler", zap.Duration("interval", s.Interval))

	go func() {
		s.Scan(context.Background())

		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Scan(context.Background())
			case <-stop:
				return
			}
		}
	}()
}

// Stop halts the scan loop. Stopping a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	close(s.stop)
	s.running = false
	utils.GetLogger().Info("Reminder scheduler stopped")
}

// Running reports whether the scan loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Scan finds due reminders and processes each one. Per-reminder failures are
// logged and skipped; nothing escapes to terminate the loop.
func (s *Scheduler) Scan(ctx context.Context) {
	logger := utils.GetLogger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Reminder scan panicked", zap.Any("error", r))
		}
	}()

	now := time.Now()
	due, err := s.Reminders.DueReminders(ctx, now)
	if err != nil {
		logger.Error("Failed to query due reminders", zap.Error(err))
		return
	}
	if len(due) == 0 {
		logger.Debug("No due reminders found")
		return
	}

	logger.Info("Found due reminders", zap.Int("count", len(due)))

	processed := 0
	for i := range due {
		r := &due[i]
		if err := s.processReminder(ctx, r, now); err != nil {
			// The trigger time was not advanced, so this reminder stays
			// due and is retried on the next scan.
			logger.Error("Error processing reminder",
				zap.String("reminderId", r.ID),
				zap.String("title", r.Title),
				zap.Error(err))
			continue
		}
		processed++
	}

	logger.Info("Completed reminder scan",
		zap.Int("due", len(due)),
		zap.Int("processed", processed))
}

// processReminder emits the notification (deduplicated per trigger window)
// and advances the reminder's trigger time. The advance happens even when
// creation was dedup-skipped, so a stale window is not reprocessed forever.
func (s *Scheduler) processReminder(ctx context.Context, r *models.Reminder, now time.Time) error {
	if _, err := s.Notifications.RecordTrigger(ctx, r, now); err != nil {
		return err
	}
	return s.Reminders.AdvanceTrigger(ctx, r, now)
}
