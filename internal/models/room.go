package models

// RoomStatus is the lifecycle stage of a room for the current day.
// The wire values are the exact display strings the front-end renders.
type RoomStatus string

const (
	StatusNotCleaned RoomStatus = "Not Cleaned"
	StatusInProgress RoomStatus = "In Progress"
	StatusDone       RoomStatus = "Done"
)

// Valid reports whether s is one of the three known statuses.
func (s RoomStatus) Valid() bool {
	switch s {
	case StatusNotCleaned, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Priority is the cleaning priority of a room, highest-first ordering.
type Priority string

const (
	PriorityNormal Priority = "Normal"
	PriorityVIP    Priority = "VIP"
	PriorityUrgent Priority = "Urgent"
)

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityNormal, PriorityVIP, PriorityUrgent:
		return true
	}
	return false
}

// Rank returns the sort weight of the priority (Urgent=3 > VIP=2 > Normal=1).
// Unknown priorities rank below Normal.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 3
	case PriorityVIP:
		return 2
	case PriorityNormal:
		return 1
	}
	return 0
}

// Room is one unit of housekeeping work tracked through the status lifecycle.
// Nullable attribution and timestamp fields are pointers; timestamps are Unix
// milliseconds, matching the persisted JSON layout.
type Room struct {
	ID       string     `json:"id"`
	Number   string     `json:"number"`
	Priority Priority   `json:"priority"`
	Status   RoomStatus `json:"status"`
	// LastUpdatedBy is the username of the most recent status change; set on
	// every transition together with LastUpdatedAt.
	LastUpdatedBy *string `json:"lastUpdatedBy"`
	LastUpdatedAt *int64  `json:"lastUpdatedAt"`
	// StartedAt is stamped when the room enters In Progress.
	StartedAt *int64 `json:"startedAt"`
	// CompletedAt is stamped when the room is marked Done.
	CompletedAt *int64 `json:"completedAt"`
	// AssignedTo is the username of whoever started the room; nil until the
	// room first enters In Progress.
	AssignedTo *string `json:"assignedTo"`
	Notes      string  `json:"notes,omitempty"`
}

// ResetWorkState returns a copy of the room with all per-day work state
// cleared: status back to Not Cleaned, attribution, timestamps and notes
// wiped. Identity, number and priority are preserved.
func (r Room) ResetWorkState() Room {
	r.Status = StatusNotCleaned
	r.LastUpdatedBy = nil
	r.LastUpdatedAt = nil
	r.StartedAt = nil
	r.CompletedAt = nil
	r.AssignedTo = nil
	r.Notes = ""
	return r
}
