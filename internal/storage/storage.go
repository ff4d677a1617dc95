package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"vitre/backend/internal/config"
	"vitre/backend/internal/models"
)

// Store is the persistence boundary for the room roster and the notification
// log. Loads are best-effort: absent or corrupt data comes back as an empty
// slice, never as an error. Saves report failure but callers treat it as
// non-fatal; the in-memory collection stays the source of truth.
type Store interface {
	LoadRooms(ctx context.Context) []models.Room
	SaveRooms(ctx context.Context, rooms []models.Room) error

	LoadNotifications(ctx context.Context) []models.Notification
	SaveNotifications(ctx context.Context, notifs []models.Notification) error

	// ResetDailyData clears the work state of every persisted room while
	// preserving the roster (id, number, priority survive).
	ResetDailyData(ctx context.Context) error
}

// Service implements Store on top of a KV backend, serializing each record as
// a single JSON blob under a fixed key with full-collection overwrite on
// every write.
type Service struct {
	kv        KV
	roomsKey  string
	notifsKey string
}

// NewService creates a store over kv. Empty key arguments fall back to the
// default persistence keys.
func NewService(kv KV, roomsKey, notifsKey string) *Service {
	if roomsKey == "" {
		roomsKey = config.RoomsKey
	}
	if notifsKey == "" {
		notifsKey = config.NotificationsKey
	}
	return &Service{kv: kv, roomsKey: roomsKey, notifsKey: notifsKey}
}

// LoadRooms returns the persisted roster, or an empty slice when the key is
// absent, the backend is unreachable, or the blob fails to parse. Malformed
// data is logged and swallowed, never raised to the caller.
func (s *Service) LoadRooms(ctx context.Context) []models.Room {
	raw, err := s.kv.Get(ctx, s.roomsKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("ERROR: Failed to load rooms: %v", err)
		}
		return []models.Room{}
	}

	var rooms []models.Room
	if err := json.Unmarshal([]byte(raw), &rooms); err != nil {
		log.Printf("ERROR: Malformed room data under %s, treating as empty: %v", s.roomsKey, err)
		return []models.Room{}
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	return rooms
}

// SaveRooms overwrites the persisted roster with the given collection.
func (s *Service) SaveRooms(ctx context.Context, rooms []models.Room) error {
	data, err := json.Marshal(rooms)
	if err != nil {
		return fmt.Errorf("failed to marshal rooms: %w", err)
	}
	if err := s.kv.Set(ctx, s.roomsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save rooms: %w", err)
	}
	return nil
}

// LoadNotifications returns the persisted notification log, newest first.
// Same best-effort contract as LoadRooms.
func (s *Service) LoadNotifications(ctx context.Context) []models.Notification {
	raw, err := s.kv.Get(ctx, s.notifsKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("ERROR: Failed to load notifications: %v", err)
		}
		return []models.Notification{}
	}

	var notifs []models.Notification
	if err := json.Unmarshal([]byte(raw), &notifs); err != nil {
		log.Printf("ERROR: Malformed notification data under %s, treating as empty: %v", s.notifsKey, err)
		return []models.Notification{}
	}
	if notifs == nil {
		notifs = []models.Notification{}
	}
	return notifs
}

// SaveNotifications persists the log, keeping only the newest entries up to
// the configured cap. The input is expected newest-first.
func (s *Service) SaveNotifications(ctx context.Context, notifs []models.Notification) error {
	if len(notifs) > config.NotificationLogCap {
		notifs = notifs[:config.NotificationLogCap]
	}
	data, err := json.Marshal(notifs)
	if err != nil {
		return fmt.Errorf("failed to marshal notifications: %w", err)
	}
	if err := s.kv.Set(ctx, s.notifsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save notifications: %w", err)
	}
	return nil
}

// ResetDailyData maps every persisted room back to its start-of-day state and
// writes the result. The roster itself survives; only work state is cleared.
func (s *Service) ResetDailyData(ctx context.Context) error {
	rooms := s.LoadRooms(ctx)
	for i := range rooms {
		rooms[i] = rooms[i].ResetWorkState()
	}
	return s.SaveRooms(ctx, rooms)
}
