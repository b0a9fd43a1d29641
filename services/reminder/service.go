package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	reminderRepo "dermacare/database/repository/reminder"
	"dermacare/models"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// DefaultReminderService is the production implementation.
type DefaultReminderService struct {
	Repo reminderRepo.ReminderRepository
}

// CreateReminder builds a reminder from the request, stamps its next trigger
// time, and persists it.
func (s *DefaultReminderService) CreateReminder(ctx context.Context, userID string, req models.CreateReminderRequest) (*models.Reminder, error) {
	mode := req.ReminderMode
	if mode == "" {
		mode = models.ReminderModeRecurring
	}

	r := models.Reminder{
		UserID:        userID,
		Title:         strings.TrimSpace(req.Title),
		Type:          req.Type,
		Time:          req.Time,
		ReminderMode:  mode,
		CustomMessage: strings.TrimSpace(req.CustomMessage),
		Timezone:      req.Timezone,
		IsActive:      true,
	}
	if r.Timezone == "" {
		r.Timezone = "UTC"
	}

	if mode == models.ReminderModeRecurring {
		r.Days = lowercaseDays(req.Days)
	}
	if mode == models.ReminderModeOneTime && req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("create reminder: %w", err)
		}
		r.Date = date
	}

	r.NextTriggerTime = ComputeNextTrigger(&r, time.Now())

	id, err := s.Repo.Create(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("create reminder: %w", err)
	}
	return s.Repo.GetByID(ctx, id, userID)
}

// GetReminders returns all reminders for a user, newest first.
func (s *DefaultReminderService) GetReminders(ctx context.Context, userID string) ([]models.Reminder, error) {
	return s.Repo.GetByUser(ctx, userID)
}

// GetReminderByID returns one reminder, owner-scoped.
func (s *DefaultReminderService) GetReminderByID(ctx context.Context, id, userID string) (*models.Reminder, error) {
	return s.Repo.GetByID(ctx, id, userID)
}

// UpdateReminder applies a partial update and recomputes the trigger time.
// Switching mode clears the opposite schedule field.
func (s *DefaultReminderService) UpdateReminder(ctx context.Context, id, userID string, req models.UpdateReminderRequest) (*models.Reminder, error) {
	r, err := s.Repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		r.Title = strings.TrimSpace(*req.Title)
	}
	if req.Type != nil {
		r.Type = *req.Type
	}
	if req.Time != nil {
		r.Time = *req.Time
	}
	if req.ReminderMode != nil {
		r.ReminderMode = *req.ReminderMode
		switch r.ReminderMode {
		case models.ReminderModeOneTime:
			r.Days = nil
		case models.ReminderModeRecurring:
			r.Date = nil
		}
	}
	if req.Days != nil {
		if len(*req.Days) > 0 {
			r.Days = lowercaseDays(*req.Days)
		} else {
			r.Days = nil
		}
	}
	if req.Date != nil {
		date, derr := parseDate(*req.Date)
		if derr != nil {
			return nil, fmt.Errorf("update reminder: %w", derr)
		}
		r.Date = date
	}
	if req.CustomMessage != nil {
		r.CustomMessage = strings.TrimSpace(*req.CustomMessage)
	}
	if req.IsActive != nil {
		r.IsActive = *req.IsActive
	}
	if req.Timezone != nil {
		r.Timezone = *req.Timezone
	}

	// nextTriggerTime is never left stale relative to the schedule fields.
	if r.IsActive {
		r.NextTriggerTime = ComputeNextTrigger(r, time.Now())
	} else {
		r.NextTriggerTime = nil
	}

	if err := s.Repo.Update(ctx, *r); err != nil {
		return nil, err
	}
	return r, nil
}

// DeleteReminder removes one reminder, owner-scoped.
func (s *DefaultReminderService) DeleteReminder(ctx context.Context, id, userID string) error {
	return s.Repo.Delete(ctx, id, userID)
}

// DueReminders returns active reminders whose trigger time has passed.
func (s *DefaultReminderService) DueReminders(ctx context.Context, now time.Time) ([]models.Reminder, error) {
	return s.Repo.FindDue(ctx, now)
}

// AdvanceTrigger moves a fired reminder past now. One-time reminders are
// deactivated with a cleared trigger time; recurring reminders get the next
// computed occurrence.
func (s *DefaultReminderService) AdvanceTrigger(ctx context.Context, r *models.Reminder, now time.Time) error {
	if r.ReminderMode == models.ReminderModeOneTime {
		return s.Repo.SetTriggerState(ctx, r.ID, nil, false)
	}
	next := ComputeNextTrigger(r, now)
	return s.Repo.SetTriggerState(ctx, r.ID, next, true)
}

func lowercaseDays(days []string) []string {
	if len(days) == 0 {
		return nil
	}
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = strings.ToLower(d)
	}
	return out
}

func parseDate(s string) (*time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q", s)
}
