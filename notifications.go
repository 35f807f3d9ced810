package farmkonnect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// NotificationsService groups the notification operations.
type NotificationsService struct {
	b backend
}

// Bool returns a pointer to v, for use as an optional filter argument.
func Bool(v bool) *bool {
	return &v
}

// List returns a page of notifications. The read filter is tri-state:
// nil lists all notifications, otherwise only read or unread ones.
func (s *NotificationsService) List(ctx context.Context, limit, offset int, read *bool) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	if read != nil {
		q.Set("read", strconv.FormatBool(*read))
	}
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/notifications.list", nil, q, nil)
}

// MarkAsRead marks a single notification as read.
func (s *NotificationsService) MarkAsRead(ctx context.Context, id int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))
	return s.b.Request(ctx, http.MethodPost, "/api/trpc/notifications.markAsRead", nil, q, nil)
}

// MarkAllAsRead marks every notification as read.
func (s *NotificationsService) MarkAllAsRead(ctx context.Context) (json.RawMessage, error) {
	return s.b.Request(ctx, http.MethodPost, "/api/trpc/notifications.markAllAsRead", nil, nil, nil)
}

// Delete removes a notification.
func (s *NotificationsService) Delete(ctx context.Context, id int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("id", strconv.Itoa(id))
	return s.b.Request(ctx, http.MethodDelete, "/api/trpc/notifications.delete", nil, q, nil)
}

// GetPreferences returns the caller's notification preferences.
func (s *NotificationsService) GetPreferences(ctx context.Context) (json.RawMessage, error) {
	return s.b.Request(ctx, http.MethodGet, "/api/trpc/notifications.getPreferences", nil, nil, nil)
}

// UpdatePreferences replaces the caller's notification preferences.
func (s *NotificationsService) UpdatePreferences(ctx context.Context, prefs any) (json.RawMessage, error) {
	return s.b.Request(ctx, http.MethodPut, "/api/trpc/notifications.updatePreferences", prefs, nil, nil)
}
