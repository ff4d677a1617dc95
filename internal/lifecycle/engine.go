// Package lifecycle owns the authoritative in-memory room collection for the
// session and applies status-transition commands against it. Every accepted
// mutation is followed by a full persistence write through the store; a failed
// write is logged and the in-memory state remains the source of truth.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"vitre/backend/internal/config"
	"vitre/backend/internal/models"
	"vitre/backend/internal/storage"

	"github.com/google/uuid"
)

// ErrRoomNotFound is returned when an operation references a room id that is
// not in the collection. The collection is left untouched.
var ErrRoomNotFound = errors.New("room not found")

// Clock supplies the current time for attribution stamps. Injected so tests
// run against a fixed time.
type Clock func() time.Time

// Broadcaster receives every notification the engine emits, for live delivery
// to connected clients. Purely observational; the engine works without one.
type Broadcaster interface {
	Broadcast(n models.Notification)
}

// Engine serializes all lifecycle commands behind one mutex so each command
// runs to completion, memory mutation then persistence, before the next is
// accepted.
type Engine struct {
	mu          sync.Mutex
	store       storage.Store
	now         Clock
	broadcaster Broadcaster

	// RestampStartedAt controls whether re-entering In Progress on a room
	// that already has a start time overwrites it. The front-end this engine
	// replaced re-stamped unconditionally, so that is the default; flip off
	// to preserve the first start time instead.
	RestampStartedAt bool

	rooms  []models.Room
	notifs []models.Notification
}

func NewEngine(store storage.Store, now Clock) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		store:            store,
		now:              now,
		RestampStartedAt: true,
		rooms:            []models.Room{},
		notifs:           []models.Notification{},
	}
}

// SetBroadcaster wires a live notification sink. Call before serving traffic.
func (e *Engine) SetBroadcaster(b Broadcaster) {
	e.broadcaster = b
}

// LoadInitial populates the in-memory collections from the store.
func (e *Engine) LoadInitial(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rooms = e.store.LoadRooms(ctx)
	e.notifs = e.store.LoadNotifications(ctx)
	log.Printf("Loaded %d rooms and %d notifications from store", len(e.rooms), len(e.notifs))
}

// Rooms returns a copy of the current room collection in insertion order.
func (e *Engine) Rooms() []models.Room {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Room, len(e.rooms))
	copy(out, e.rooms)
	return out
}

// Notifications returns a copy of the notification log, newest first.
func (e *Engine) Notifications() []models.Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Notification, len(e.notifs))
	copy(out, e.notifs)
	return out
}

// ApplyTransition sets the room's status and stamps attribution. The status
// is assigned as requested with no forward-order validation; callers are
// trusted collaborators. Entering In Progress additionally claims the room
// for the actor and stamps the start time; entering Done stamps completion.
// The updated room is built as a new record and returned.
func (e *Engine) ApplyTransition(ctx context.Context, roomID string, status models.RoomStatus, actor models.User) (models.Room, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(roomID)
	if idx < 0 {
		return models.Room{}, ErrRoomNotFound
	}

	now := e.now().UnixMilli()
	updated := e.rooms[idx]
	updated.Status = status
	updated.LastUpdatedBy = &actor.Username
	updated.LastUpdatedAt = &now

	if status == models.StatusInProgress {
		updated.AssignedTo = &actor.Username
		if updated.StartedAt == nil || e.RestampStartedAt {
			startedAt := now
			updated.StartedAt = &startedAt
		}
	}
	if status == models.StatusDone {
		completedAt := now
		updated.CompletedAt = &completedAt
	}

	e.rooms[idx] = updated
	e.persistRooms(ctx)

	e.emit(ctx, models.Notification{
		ID:        uuid.New().String(),
		Message:   fmt.Sprintf("%s marked Room %s as %s", actor.Username, updated.Number, status),
		Timestamp: now,
		Type:      models.NotifInfo,
	})

	return updated, nil
}

// AddRoom appends a fresh room in the Not Cleaned state with all work-state
// fields null. Number uniqueness is by convention, not enforced.
func (e *Engine) AddRoom(ctx context.Context, number string, priority models.Priority) models.Room {
	e.mu.Lock()
	defer e.mu.Unlock()

	room := models.Room{
		ID:       uuid.New().String(),
		Number:   number,
		Priority: priority,
		Status:   models.StatusNotCleaned,
	}
	e.rooms = append(e.rooms, room)
	e.persistRooms(ctx)
	return room
}

// DeleteRoom removes the room with the given id and persists the remainder.
// The notification log is untouched. Deleting an unknown id reports
// ErrRoomNotFound and changes nothing.
func (e *Engine) DeleteRoom(ctx context.Context, roomID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx := e.indexOf(roomID)
	if idx < 0 {
		return ErrRoomNotFound
	}
	e.rooms = append(e.rooms[:idx], e.rooms[idx+1:]...)
	e.persistRooms(ctx)
	return nil
}

// ResetDay clears the work state of every room for a new day, keeping the
// roster. The reset is applied to the in-memory collection first and then to
// the store; a "reset" toast is broadcast but, unlike transition
// notifications, never persisted to the log.
func (e *Engine) ResetDay(ctx context.Context) {
	e.mu.Lock()
	for i := range e.rooms {
		e.rooms[i] = e.rooms[i].ResetWorkState()
	}
	e.persistRooms(ctx)
	now := e.now().UnixMilli()
	e.mu.Unlock()

	if e.broadcaster != nil {
		e.broadcaster.Broadcast(models.Notification{
			ID:        uuid.New().String(),
			Message:   "Daily schedule has been reset.",
			Timestamp: now,
			Type:      models.NotifWarning,
		})
	}
}

// indexOf must be called with the mutex held.
func (e *Engine) indexOf(roomID string) int {
	for i := range e.rooms {
		if e.rooms[i].ID == roomID {
			return i
		}
	}
	return -1
}

// persistRooms writes the full collection. Must be called with the mutex
// held. A failure is logged; the session continues on in-memory state.
func (e *Engine) persistRooms(ctx context.Context) {
	if err := e.store.SaveRooms(ctx, e.rooms); err != nil {
		log.Printf("ERROR: Failed to persist rooms, continuing on in-memory state: %v", err)
	}
}

// emit prepends the notification to the capped log, persists it and hands it
// to the broadcaster. Must be called with the mutex held.
func (e *Engine) emit(ctx context.Context, n models.Notification) {
	e.notifs = append([]models.Notification{n}, e.notifs...)
	if len(e.notifs) > config.NotificationLogCap {
		e.notifs = e.notifs[:config.NotificationLogCap]
	}
	if err := e.store.SaveNotifications(ctx, e.notifs); err != nil {
		log.Printf("ERROR: Failed to persist notifications: %v", err)
	}
	if e.broadcaster != nil {
		e.broadcaster.Broadcast(n)
	}
}
