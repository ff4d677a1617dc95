package config

import "time"

const (
	AppName = "Vitre Manager"

	// Persistence keys. Two independent records in the key-value store:
	// the full room roster and the capped notification log.
	RoomsKey         = "vitre:rooms:v1"
	NotificationsKey = "vitre:notifs:v1"

	// NotificationLogCap bounds the persisted notification log; the save path
	// truncates to the newest entries before writing.
	NotificationLogCap = 20

	// ToastAutoDismiss is how long the front-end shows a notification toast.
	// Cosmetic only; surfaced to clients via the /config endpoint.
	ToastAutoDismiss = 3 * time.Second
)
