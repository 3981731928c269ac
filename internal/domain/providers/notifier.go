package providers

import (
	"context"
	"time"
)

// NotificationLevel mirrors the toast variants shown to users
type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
	NotificationInfo    NotificationLevel = "info"
)

// Notification is a user-facing message produced by a mutation or load
type Notification struct {
	Level   NotificationLevel `json:"level"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Time    time.Time         `json:"time"`
}

// Notifier delivers notifications to whatever surface displays them
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotificationSubscriber receives notifications published elsewhere
type NotificationSubscriber interface {
	// Subscribe streams notifications until ctx is cancelled
	Subscribe(ctx context.Context) (<-chan Notification, error)
}
