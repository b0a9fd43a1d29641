package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	// Reminder endpoints.
	CreateReminderHandler  gin.HandlerFunc
	GetRemindersHandler    gin.HandlerFunc
	GetReminderByIDHandler gin.HandlerFunc
	UpdateReminderHandler  gin.HandlerFunc
	DeleteReminderHandler  gin.HandlerFunc

	// Notification endpoints.
	GetNotificationsHandler         gin.HandlerFunc
	MarkNotificationReadHandler     gin.HandlerFunc
	MarkAllNotificationsReadHandler gin.HandlerFunc

	// Symptom log endpoints.
	CreateSymptomLogHandler  gin.HandlerFunc
	GetSymptomLogsHandler    gin.HandlerFunc
	GetSymptomLogByIDHandler gin.HandlerFunc
	UpdateSymptomLogHandler  gin.HandlerFunc
	DeleteSymptomLogHandler  gin.HandlerFunc
}
