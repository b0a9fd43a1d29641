package reminder

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"dermacare/models"
)

// dayNumbers maps weekday tokens to time.Weekday numbering (Sunday = 0).
var dayNumbers = map[string]int{
	"sun": 0,
	"mon": 1,
	"tue": 2,
	"wed": 3,
	"thu": 4,
	"fri": 5,
	"sat": 6,
}

var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
}

// ParseClockTime extracts the hour and minute from a reminder time string.
// Accepted forms are "HH:MM", "HH:MM:SS", or a full ISO datetime whose
// time-of-day component is used. Seconds and fractions are ignored.
func ParseClockTime(s string) (hour, minute int, err error) {
	s = strings.TrimSpace(s)

	if strings.Contains(s, "T") {
		for _, layout := range datetimeLayouts {
			if t, perr := time.Parse(layout, s); perr == nil {
				return t.Hour(), t.Minute(), nil
			}
		}
		return 0, 0, fmt.Errorf("invalid datetime %q", s)
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, fmt.Errorf("invalid time %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}

// ComputeNextTrigger computes the next instant a reminder should fire,
// evaluated against now in now's location. Returns nil when the reminder
// cannot fire: a lapsed one-time reminder, or a recurring reminder with no
// valid days.
//
// For recurring reminders on specific weekdays the scan is strictly
// "day > current weekday": today's occurrence is never returned even when its
// time of day is still ahead. Only the daily case returns a same-day trigger.
func ComputeNextTrigger(r *models.Reminder, now time.Time) *time.Time {
	hour, minute, err := ParseClockTime(r.Time)
	if err != nil {
		return nil
	}

	if r.ReminderMode == models.ReminderModeOneTime && r.Date != nil {
		d := *r.Date
		candidate := time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, now.Location())
		if candidate.Before(now) {
			return nil
		}
		return &candidate
	}

	if r.ReminderMode == models.ReminderModeRecurring && len(r.Days) > 0 {
		if containsDay(r.Days, "daily") {
			candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
			if !candidate.After(now) {
				candidate = candidate.AddDate(0, 0, 1)
			}
			return &candidate
		}

		currentDay := int(now.Weekday())
		var reminderDays []int
		for _, d := range r.Days {
			if n, ok := dayNumbers[strings.ToLower(d)]; ok {
				reminderDays = append(reminderDays, n)
			}
		}
		if len(reminderDays) == 0 {
			return nil
		}
		sort.Ints(reminderDays)

		// First listed day later in the current week.
		for _, day := range reminderDays {
			if day > currentDay {
				candidate := time.Date(now.Year(), now.Month(), now.Day()+(day-currentDay), hour, minute, 0, 0, now.Location())
				return &candidate
			}
		}

		// Otherwise wrap to the earliest listed day of next week.
		daysUntilNext := 7 - currentDay + reminderDays[0]
		candidate := time.Date(now.Year(), now.Month(), now.Day()+daysUntilNext, hour, minute, 0, 0, now.Location())
		return &candidate
	}

	return nil
}

func containsDay(days []string, want string) bool {
	for _, d := range days {
		if strings.EqualFold(d, want) {
			return true
		}
	}
	return false
}
