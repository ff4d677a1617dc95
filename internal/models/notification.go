package models

// NotificationType selects the toast styling on the front-end.
type NotificationType string

const (
	NotifInfo    NotificationType = "info"
	NotifSuccess NotificationType = "success"
	NotifWarning NotificationType = "warning"
)

// Notification is an ephemeral, human-readable record of a state change.
// Notifications are observational only: the lifecycle never reads them back.
// The persisted log keeps the newest entries first.
type Notification struct {
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	Timestamp int64            `json:"timestamp"`
	Type      NotificationType `json:"type"`
}
