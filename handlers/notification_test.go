package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	notificationRepo "dermacare/database/repository/notification"
	"dermacare/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotificationService struct {
	listFn        func(ctx context.Context, userID string, limit, skip int64, unreadOnly bool) (*models.NotificationPage, error)
	markReadFn    func(ctx context.Context, id, userID string) (*models.Notification, error)
	markAllReadFn func(ctx context.Context, userID string) (int64, error)
}

func (s *stubNotificationService) ListForUser(ctx context.Context, userID string, limit, skip int64, unreadOnly bool) (*models.NotificationPage, error) {
	return s.listFn(ctx, userID, limit, skip, unreadOnly)
}

func (s *stubNotificationService) MarkRead(ctx context.Context, id, userID string) (*models.Notification, error) {
	return s.markReadFn(ctx, id, userID)
}

func (s *stubNotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return s.markAllReadFn(ctx, userID)
}

func (s *stubNotificationService) RecordTrigger(_ context.Context, _ *models.Reminder, _ time.Time) (bool, error) {
	return false, errors.New("not used by handlers")
}

func notificationRouter(svc *stubNotificationService, userID string) *gin.Engine {
	h := NewNotificationHandler(svc)
	router := gin.New()
	group := router.Group("/api/notifications")
	if userID != "" {
		group.Use(authAs(userID))
	}
	group.GET("", h.GetNotificationsHandler)
	group.PUT("/read-all", h.MarkAllNotificationsReadHandler)
	group.PUT("/:id/read", h.MarkNotificationReadHandler)
	return router
}

func TestGetNotificationsHandlerDefaults(t *testing.T) {
	svc := &stubNotificationService{
		listFn: func(_ context.Context, userID string, limit, skip int64, unreadOnly bool) (*models.NotificationPage, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, int64(50), limit)
			assert.Equal(t, int64(0), skip)
			assert.False(t, unreadOnly)
			return &models.NotificationPage{Notifications: []models.Notification{}, Limit: limit, Skip: skip}, nil
		},
	}
	router := notificationRouter(svc, "user-1")

	w, envelope := doJSON(t, router, http.MethodGet, "/api/notifications", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Notifications retrieved successfully", envelope.Message)
}

func TestGetNotificationsHandlerQueryParams(t *testing.T) {
	svc := &stubNotificationService{
		listFn: func(_ context.Context, _ string, limit, skip int64, unreadOnly bool) (*models.NotificationPage, error) {
			assert.Equal(t, int64(20), limit)
			assert.Equal(t, int64(40), skip)
			assert.True(t, unreadOnly)
			return &models.NotificationPage{Notifications: []models.Notification{}, Limit: limit, Skip: skip}, nil
		},
	}
	router := notificationRouter(svc, "user-1")

	w, _ := doJSON(t, router, http.MethodGet, "/api/notifications?limit=20&skip=40&unreadOnly=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetNotificationsHandlerClampsBadParams(t *testing.T) {
	var gotLimit, gotSkip int64
	svc := &stubNotificationService{
		listFn: func(_ context.Context, _ string, limit, skip int64, _ bool) (*models.NotificationPage, error) {
			gotLimit, gotSkip = limit, skip
			return &models.NotificationPage{Notifications: []models.Notification{}}, nil
		},
	}
	router := notificationRouter(svc, "user-1")

	// Oversized limit and negative skip fall back to the defaults.
	w, _ := doJSON(t, router, http.MethodGet, "/api/notifications?limit=5000&skip=-3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(50), gotLimit)
	assert.Equal(t, int64(0), gotSkip)

	w, _ = doJSON(t, router, http.MethodGet, "/api/notifications?limit=abc", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(50), gotLimit)
}

func TestMarkNotificationReadHandler(t *testing.T) {
	svc := &stubNotificationService{
		markReadFn: func(_ context.Context, id, userID string) (*models.Notification, error) {
			assert.Equal(t, "n1", id)
			assert.Equal(t, "user-1", userID)
			return &models.Notification{ID: id, UserID: userID, IsRead: true}, nil
		},
	}
	router := notificationRouter(svc, "user-1")

	w, envelope := doJSON(t, router, http.MethodPut, "/api/notifications/n1/read", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Notification marked as read", envelope.Message)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["isRead"])
}

func TestMarkNotificationReadHandlerNotFound(t *testing.T) {
	svc := &stubNotificationService{
		markReadFn: func(_ context.Context, _, _ string) (*models.Notification, error) {
			return nil, notificationRepo.ErrNotFound
		},
	}
	router := notificationRouter(svc, "user-1")

	w, envelope := doJSON(t, router, http.MethodPut, "/api/notifications/n-x/read", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Notification not found or you do not have permission to update it", envelope.Message)
}

func TestMarkAllNotificationsReadHandler(t *testing.T) {
	svc := &stubNotificationService{
		markAllReadFn: func(_ context.Context, userID string) (int64, error) {
			assert.Equal(t, "user-1", userID)
			return 3, nil
		},
	}
	router := notificationRouter(svc, "user-1")

	w, envelope := doJSON(t, router, http.MethodPut, "/api/notifications/read-all", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "All notifications marked as read", envelope.Message)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), data["updatedCount"])
}

func TestNotificationsHandlerUnauthenticated(t *testing.T) {
	svc := &stubNotificationService{}
	router := notificationRouter(svc, "")

	w, envelope := doJSON(t, router, http.MethodGet, "/api/notifications", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, envelope.Success)
}
