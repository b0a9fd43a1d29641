package reminder

import (
	"context"
	"testing"
	"time"

	reminderRepo "dermacare/database/repository/reminder"
	"dermacare/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	reminders map[string]models.Reminder
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{reminders: make(map[string]models.Reminder)}
}

func (f *fakeRepo) Create(_ context.Context, r models.Reminder) (string, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	f.reminders[r.ID] = r
	return r.ID, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id, userID string) (*models.Reminder, error) {
	r, ok := f.reminders[id]
	if !ok || r.UserID != userID {
		return nil, reminderRepo.ErrNotFound
	}
	return &r, nil
}

func (f *fakeRepo) GetByUser(_ context.Context, userID string) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, r := range f.reminders {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, r models.Reminder) error {
	if _, ok := f.reminders[r.ID]; !ok {
		return reminderRepo.ErrNotFound
	}
	f.reminders[r.ID] = r
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id, userID string) error {
	r, ok := f.reminders[id]
	if !ok || r.UserID != userID {
		return reminderRepo.ErrNotFound
	}
	delete(f.reminders, id)
	return nil
}

func (f *fakeRepo) FindDue(_ context.Context, now time.Time) ([]models.Reminder, error) {
	var due []models.Reminder
	for _, r := range f.reminders {
		if r.IsActive && r.NextTriggerTime != nil && !r.NextTriggerTime.After(now) {
			due = append(due, r)
		}
	}
	return due, nil
}

func (f *fakeRepo) SetTriggerState(_ context.Context, id string, next *time.Time, isActive bool) error {
	r, ok := f.reminders[id]
	if !ok {
		return reminderRepo.ErrNotFound
	}
	r.NextTriggerTime = next
	r.IsActive = isActive
	f.reminders[id] = r
	return nil
}

func (f *fakeRepo) EnsureIndexes() error { return nil }

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateReminderDefaults(t *testing.T) {
	s := &DefaultReminderService{Repo: newFakeRepo()}

	r, err := s.CreateReminder(context.Background(), "user-1", models.CreateReminderRequest{
		Title: "  Take medication  ",
		Type:  models.ReminderTypeMedication,
		Time:  "08:00",
		Days:  []string{"MON", "Wed"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "user-1", r.UserID)
	assert.Equal(t, "Take medication", r.Title)
	assert.Equal(t, models.ReminderModeRecurring, r.ReminderMode)
	assert.Equal(t, []string{"mon", "wed"}, r.Days)
	assert.Equal(t, "UTC", r.Timezone)
	assert.True(t, r.IsActive)
	require.NotNil(t, r.NextTriggerTime)
	assert.True(t, r.NextTriggerTime.After(time.Now()))
}

func TestCreateOneTimeReminder(t *testing.T) {
	s := &DefaultReminderService{Repo: newFakeRepo()}
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	r, err := s.CreateReminder(context.Background(), "user-1", models.CreateReminderRequest{
		Title:        "Dermatologist appointment",
		Type:         models.ReminderTypeAppointment,
		Time:         "09:30",
		ReminderMode: models.ReminderModeOneTime,
		Date:         tomorrow,
	})
	require.NoError(t, err)

	assert.Equal(t, models.ReminderModeOneTime, r.ReminderMode)
	assert.Nil(t, r.Days)
	require.NotNil(t, r.Date)
	require.NotNil(t, r.NextTriggerTime)
	assert.Equal(t, 9, r.NextTriggerTime.Hour())
	assert.Equal(t, 30, r.NextTriggerTime.Minute())
}

func TestCreateOneTimeReminderBadDate(t *testing.T) {
	s := &DefaultReminderService{Repo: newFakeRepo()}

	_, err := s.CreateReminder(context.Background(), "user-1", models.CreateReminderRequest{
		Title:        "Checkup",
		Type:         models.ReminderTypeAppointment,
		Time:         "09:00",
		ReminderMode: models.ReminderModeOneTime,
		Date:         "not-a-date",
	})
	require.Error(t, err)
}

func TestUpdateReminderModeSwitchClearsOppositeField(t *testing.T) {
	repo := newFakeRepo()
	s := &DefaultReminderService{Repo: repo}

	r, err := s.CreateReminder(context.Background(), "user-1", models.CreateReminderRequest{
		Title: "Take medication",
		Type:  models.ReminderTypeMedication,
		Time:  "08:00",
		Days:  []string{"daily"},
	})
	require.NoError(t, err)

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	updated, err := s.UpdateReminder(context.Background(), r.ID, "user-1", models.UpdateReminderRequest{
		ReminderMode: strPtr(models.ReminderModeOneTime),
		Date:         strPtr(tomorrow),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Days)
	require.NotNil(t, updated.Date)

	// Switching back clears the date.
	updated, err = s.UpdateReminder(context.Background(), r.ID, "user-1", models.UpdateReminderRequest{
		ReminderMode: strPtr(models.ReminderModeRecurring),
		Days:         &[]string{"mon", "fri"},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Date)
	assert.Equal(t, []string{"mon", "fri"}, updated.Days)
}

func TestUpdateReminderDeactivateClearsTrigger(t *testing.T) {
	s := &DefaultReminderService{Repo: newFakeRepo()}

	r, err := s.CreateReminder(context.Background(), "user-1", models.CreateReminderRequest{
		Title: "Take medication",
		Type:  models.ReminderTypeMedication,
		Time:  "08:00",
		Days:  []string{"daily"},
	})
	require.NoError(t, err)
	require.NotNil(t, r.NextTriggerTime)

	updated, err := s.UpdateReminder(context.Background(), r.ID, "user-1", models.UpdateReminderRequest{
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Nil(t, updated.NextTriggerTime)

	// Reactivating recomputes it.
	updated, err = s.UpdateReminder(context.Background(), r.ID, "user-1", models.UpdateReminderRequest{
		IsActive: boolPtr(true),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.NextTriggerTime)
	assert.True(t, updated.NextTriggerTime.After(time.Now()))
}

func TestUpdateReminderOwnership(t *testing.T) {
	s := &DefaultReminderService{Repo: newFakeRepo()}

	r, err := s.CreateReminder(context.Background(), "user-1", models.CreateReminderRequest{
		Title: "Take medication",
		Type:  models.ReminderTypeMedication,
		Time:  "08:00",
		Days:  []string{"daily"},
	})
	require.NoError(t, err)

	_, err = s.UpdateReminder(context.Background(), r.ID, "user-2", models.UpdateReminderRequest{
		Title: strPtr("hijacked"),
	})
	assert.ErrorIs(t, err, reminderRepo.ErrNotFound)

	err = s.DeleteReminder(context.Background(), r.ID, "user-2")
	assert.ErrorIs(t, err, reminderRepo.ErrNotFound)
}

func TestAdvanceTriggerRecurring(t *testing.T) {
	repo := newFakeRepo()
	s := &DefaultReminderService{Repo: repo}

	past := time.Now().Add(-time.Minute)
	r := models.Reminder{
		ID:              "rem-1",
		UserID:          "user-1",
		Title:           "Take medication",
		Time:            "08:00",
		ReminderMode:    models.ReminderModeRecurring,
		Days:            []string{"daily"},
		IsActive:        true,
		NextTriggerTime: &past,
	}
	_, err := repo.Create(context.Background(), r)
	require.NoError(t, err)

	require.NoError(t, s.AdvanceTrigger(context.Background(), &r, time.Now()))

	stored := repo.reminders["rem-1"]
	assert.True(t, stored.IsActive)
	require.NotNil(t, stored.NextTriggerTime)
	assert.True(t, stored.NextTriggerTime.After(time.Now()))
}

func TestAdvanceTriggerOneTime(t *testing.T) {
	repo := newFakeRepo()
	s := &DefaultReminderService{Repo: repo}

	past := time.Now().Add(-time.Minute)
	yesterday := time.Now().AddDate(0, 0, -1)
	r := models.Reminder{
		ID:              "rem-1",
		UserID:          "user-1",
		Title:           "Dermatologist appointment",
		Time:            "09:00",
		ReminderMode:    models.ReminderModeOneTime,
		Date:            &yesterday,
		IsActive:        true,
		NextTriggerTime: &past,
	}
	_, err := repo.Create(context.Background(), r)
	require.NoError(t, err)

	require.NoError(t, s.AdvanceTrigger(context.Background(), &r, time.Now()))

	stored := repo.reminders["rem-1"]
	assert.False(t, stored.IsActive)
	assert.Nil(t, stored.NextTriggerTime)
}
