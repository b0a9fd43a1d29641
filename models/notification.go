package models

import "time"

// Notification types.
const (
	NotificationTypeReminder = "reminder"
	NotificationTypeSystem   = "system"
	NotificationTypeCustom   = "custom"
)

// Notification represents one firing of a reminder, independent of whether
// the user has seen it. Created only by the scheduler; mutated only by
// mark-read operations.
type Notification struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	ReminderID  string    `bson:"reminderId" json:"reminderId"`
	Title       string    `bson:"title" json:"title"`
	Message     string    `bson:"message" json:"message"`
	Type        string    `bson:"type" json:"type"` // reminder | system | custom
	IsRead      bool      `bson:"isRead" json:"isRead"`
	TriggeredAt time.Time `bson:"triggeredAt" json:"triggeredAt"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NotificationPage is the paginated response shape for GET /api/notifications.
type NotificationPage struct {
	Notifications []Notification `json:"notifications"`
	Total         int64          `json:"total"`
	Limit         int64          `json:"limit"`
	Skip          int64          `json:"skip"`
}
