package models

import "time"

// Reminder modes.
const (
	ReminderModeRecurring = "recurring"
	ReminderModeOneTime   = "one-time"
)

// Reminder types.
const (
	ReminderTypeMedication  = "medication"
	ReminderTypeAppointment = "appointment"
	ReminderTypeCustom      = "custom"
)

// ValidReminderDays lists the accepted weekday tokens for recurring reminders.
var ValidReminderDays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun", "daily"}

// Reminder represents a user-defined schedule for a notification to fire.
type Reminder struct {
	ID     string `bson:"id" json:"id"`
	UserID string `bson:"userId" json:"userId"`
	Title  string `bson:"title" json:"title"`
	Type   string `bson:"type" json:"type"` // medication | appointment | custom

	// Time is a wall-clock time of day: "HH:MM", "HH:MM:SS", or a full ISO
	// datetime whose time-of-day component is used.
	Time string `bson:"time" json:"time"`

	ReminderMode  string     `bson:"reminderMode" json:"reminderMode"` // recurring | one-time
	Days          []string   `bson:"days,omitempty" json:"days,omitempty"`
	Date          *time.Time `bson:"date,omitempty" json:"date,omitempty"`
	CustomMessage string     `bson:"customMessage" json:"customMessage"`
	IsActive      bool       `bson:"isActive" json:"isActive"`

	// Timezone is persisted per reminder but informational only; trigger
	// computation runs in server-local time.
	Timezone string `bson:"timezone" json:"timezone"`

	// NextTriggerTime is the next instant this reminder should fire, or nil
	// if it cannot fire (inactive, or a lapsed one-time reminder).
	NextTriggerTime *time.Time `bson:"nextTriggerTime,omitempty" json:"nextTriggerTime,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateReminderRequest is the payload for POST /api/reminders.
type CreateReminderRequest struct {
	Title         string   `json:"title"`
	Type          string   `json:"type"`
	Time          string   `json:"time"`
	ReminderMode  string   `json:"reminderMode"`
	Days          []string `json:"days"`
	Date          string   `json:"date"`
	CustomMessage string   `json:"customMessage"`
	Timezone      string   `json:"timezone"`
}

// UpdateReminderRequest is the payload for PUT /api/reminders/:id.
// Pointer fields distinguish "absent" from zero values.
type UpdateReminderRequest struct {
	Title         *string   `json:"title"`
	Type          *string   `json:"type"`
	Time          *string   `json:"time"`
	ReminderMode  *string   `json:"reminderMode"`
	Days          *[]string `json:"days"`
	Date          *string   `json:"date"`
	CustomMessage *string   `json:"customMessage"`
	IsActive      *bool     `json:"isActive"`
	Timezone      *string   `json:"timezone"`
}
