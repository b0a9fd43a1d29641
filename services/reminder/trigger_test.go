package reminder

import (
	"testing"
	"time"

	"dermacare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-03-10 is a Monday.
var monday = time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		hour    int
		minute  int
		wantErr bool
	}{
		{name: "hh:mm", input: "14:30", hour: 14, minute: 30},
		{name: "hh:mm:ss", input: "09:05:45", hour: 9, minute: 5},
		{name: "iso datetime", input: "2025-03-10T21:15:00Z", hour: 21, minute: 15},
		{name: "iso datetime no zone", input: "2025-03-10T06:45:00", hour: 6, minute: 45},
		{name: "garbage", input: "not-a-time", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := ParseClockTime(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, hour)
			assert.Equal(t, tt.minute, minute)
		})
	}
}

func TestComputeNextTriggerOneTime(t *testing.T) {
	t.Run("lapsed date returns nil", func(t *testing.T) {
		r := &models.Reminder{
			ReminderMode: models.ReminderModeOneTime,
			Time:         "23:59",
			Date:         datePtr(monday.AddDate(0, 0, -1)),
		}
		assert.Nil(t, ComputeNextTrigger(r, monday))
	})

	t.Run("future date returns date at time", func(t *testing.T) {
		r := &models.Reminder{
			ReminderMode: models.ReminderModeOneTime,
			Time:         "09:00",
			Date:         datePtr(monday.AddDate(0, 0, 1)),
		}
		got := ComputeNextTrigger(r, monday)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, time.March, 11, 9, 0, 0, 0, time.UTC), *got)
	})

	t.Run("same day earlier than now returns nil", func(t *testing.T) {
		r := &models.Reminder{
			ReminderMode: models.ReminderModeOneTime,
			Time:         "07:00",
			Date:         datePtr(monday),
		}
		assert.Nil(t, ComputeNextTrigger(r, monday))
	})

	t.Run("same day later than now returns today", func(t *testing.T) {
		r := &models.Reminder{
			ReminderMode: models.ReminderModeOneTime,
			Time:         "09:30",
			Date:         datePtr(monday),
		}
		got := ComputeNextTrigger(r, monday)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC), *got)
	})

	t.Run("missing date returns nil", func(t *testing.T) {
		r := &models.Reminder{
			ReminderMode: models.ReminderModeOneTime,
			Time:         "09:00",
		}
		assert.Nil(t, ComputeNextTrigger(r, monday))
	})
}

func TestComputeNextTriggerDaily(t *testing.T) {
	t.Run("time already passed rolls to tomorrow", func(t *testing.T) {
		r := &models.Reminder{
			ReminderMode: models.ReminderModeRecurring,
			Time:         "06:00",
			Days:         []string{"daily"},
		}
		got := ComputeNextTrigger(r, monday)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, time.March, 11, 6, 0, 0, 0, time.UTC), *got)
	})

	t.Run("time still ahead fires today", func(t *testing.T) {
		r := &models.Reminder{
			ReminderMode: models.ReminderModeRecurring,
			Time:         "20:00",
			Days:         []string{"daily"},
		}
		got := ComputeNextTrigger(r, monday)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, time.March, 10, 20, 0, 0, 0, time.UTC), *got)
	})

	t.Run("exactly now rolls to tomorrow", func(t *testing.T) {
		r := &models.Reminder{
			ReminderMode: models.ReminderModeRecurring,
			Time:         "08:00",
			Days:         []string{"daily"},
		}
		got := ComputeNextTrigger(r, monday)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, time.March, 11, 8, 0, 0, 0, time.UTC), *got)
	})
}

func TestComputeNextTriggerWeekdays(t *testing.T) {
	t.Run("same weekday later today still skips to next week", func(t *testing.T) {
		// The weekday scan is strictly day > current weekday: Monday 08:00
		// with a 09:00 Monday reminder fires next Monday, not today.
		r := &models.Reminder{
			ReminderMode: models.ReminderModeRecurring,
			Time:         "09:00",
			Days:         []string{"mon"},
		}
		got := ComputeNextTrigger(r, monday)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, time.March, 17, 9, 0, 0, 0, time.UTC), *got)
	})

	t.Run("next listed day in current week", func(t *testing.T) {
		r := &models.Reminder{
			ReminderMode: models.ReminderModeRecurring,
			Time:         "10:00",
			Days:         []string{"wed", "fri"},
		}
		got := ComputeNextTrigger(r, monday)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC), *got)
	})

	t.Run("wraps to earliest listed day of next week", func(t *testing.T) {
		// From Monday, a Sunday-only reminder wraps 7-1+0 = 6 days ahead.
		r := &models.Reminder{
			ReminderMode: models.ReminderModeRecurring,
			Time:         "10:00",
			Days:         []string{"sun"},
		}
		got := ComputeNextTrigger(r, monday)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, time.March, 16, 10, 0, 0, 0, time.UTC), *got)
	})

	t.Run("unsorted days are scanned in weekday order", func(t *testing.T) {
		r := &models.Reminder{
			ReminderMode: models.ReminderModeRecurring,
			Time:         "10:00",
			Days:         []string{"fri", "tue"},
		}
		got := ComputeNextTrigger(r, monday)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2025, time.March, 11, 10, 0, 0, 0, time.UTC), *got)
	})

	t.Run("empty days returns nil", func(t *testing.T) {
		r := &models.Reminder{
			ReminderMode: models.ReminderModeRecurring,
			Time:         "10:00",
		}
		assert.Nil(t, ComputeNextTrigger(r, monday))
	})

	t.Run("unknown tokens only returns nil", func(t *testing.T) {
		r := &models.Reminder{
			ReminderMode: models.ReminderModeRecurring,
			Time:         "10:00",
			Days:         []string{"someday"},
		}
		assert.Nil(t, ComputeNextTrigger(r, monday))
	})

	t.Run("unparseable time returns nil", func(t *testing.T) {
		r := &models.Reminder{
			ReminderMode: models.ReminderModeRecurring,
			Time:         "bogus",
			Days:         []string{"daily"},
		}
		assert.Nil(t, ComputeNextTrigger(r, monday))
	})
}
