package handlers

import (
	"errors"
	"net/http"
	"strconv"

	notificationRepo "dermacare/database/repository/notification"
	"dermacare/services/notification"
	"dermacare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes the notification listing and read-state endpoints.
type NotificationHandler struct {
	Service notification.NotificationService
}

// NewNotificationHandler returns a handler wired to the given service.
func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

// GetNotificationsHandler handles GET /api/notifications?limit=&skip=&unreadOnly=.
func (h *NotificationHandler) GetNotificationsHandler(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	limit := parseQueryInt(c, "limit", 50)
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	skip := parseQueryInt(c, "skip", 0)
	if skip < 0 {
		skip = 0
	}
	unreadOnly := c.Query("unreadOnly") == "true"

	page, err := h.Service.ListForUser(c.Request.Context(), userID, limit, skip, unreadOnly)
	if err != nil {
		utils.GetLogger().Error("Failed to list notifications", zap.String("userId", userID), zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve notifications")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Notifications retrieved successfully", page)
}

// MarkNotificationReadHandler handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	updated, err := h.Service.MarkRead(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, notificationRepo.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Notification not found or you do not have permission to update it")
			return
		}
		utils.GetLogger().Error("Failed to mark notification read", zap.String("id", id), zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to mark notification as read")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", updated)
}

// MarkAllNotificationsReadHandler handles PUT /api/notifications/read-all.
func (h *NotificationHandler) MarkAllNotificationsReadHandler(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	count, err := h.Service.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		utils.GetLogger().Error("Failed to mark all notifications read", zap.String("userId", userID), zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to mark notifications as read")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", gin.H{"updatedCount": count})
}

func parseQueryInt(c *gin.Context, key string, fallback int64) int64 {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
