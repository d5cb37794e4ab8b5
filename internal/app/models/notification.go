package models

import "time"

const (
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// Notification is a user-visible message emitted after a store mutation.
type Notification struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Resource  string    `json:"resource"`
	RequestID string    `json:"requestId,omitempty"`
	SessionID string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
