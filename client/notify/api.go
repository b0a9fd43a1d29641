// Package notify is the shared client-side notification module used by both
// front-ends: a polling loop with local dedup behind a platform-abstracted
// alert surface, plus reconciliation of OS-scheduled local notifications
// against backend reminder state.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dermacare/models"
)

// RequestTimeout bounds every backend call; an expired call is abandoned and
// treated as a recoverable failure.
const RequestTimeout = 30 * time.Second

// Client is the HTTP backend client for the notification and reminder API.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient returns a Client for the given API base URL and bearer token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: RequestTimeout},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	if !env.Success {
		return fmt.Errorf("%s %s: %s", method, path, env.Message)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s %s: decode data: %w", method, path, err)
		}
	}
	return nil
}

// Notifications fetches one page of the caller's notifications.
func (c *Client) Notifications(ctx context.Context, limit, skip int, unreadOnly bool) (*models.NotificationPage, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("skip", strconv.Itoa(skip))
	if unreadOnly {
		q.Set("unreadOnly", "true")
	}

	var page models.NotificationPage
	if err := c.do(ctx, http.MethodGet, "/api/notifications?"+q.Encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// MarkNotificationRead marks one notification as read on the backend.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/api/notifications/"+id+"/read", nil)
}

// MarkAllNotificationsRead marks all unread notifications read and returns
// the number updated.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) (int64, error) {
	var data struct {
		UpdatedCount int64 `json:"updatedCount"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/notifications/read-all", &data); err != nil {
		return 0, err
	}
	return data.UpdatedCount, nil
}

// Reminders fetches all of the caller's reminders.
func (c *Client) Reminders(ctx context.Context) ([]models.Reminder, error) {
	var data struct {
		Reminders []models.Reminder `json:"reminders"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/reminders", &data); err != nil {
		return nil, err
	}
	return data.Reminders, nil
}
