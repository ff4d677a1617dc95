package lifecycle_test

import (
	"context"

	"vitre/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockStore is a testify mock of the storage.Store interface.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) LoadRooms(ctx context.Context) []models.Room {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return []models.Room{}
	}
	return args.Get(0).([]models.Room)
}

func (m *MockStore) SaveRooms(ctx context.Context, rooms []models.Room) error {
	args := m.Called(ctx, rooms)
	return args.Error(0)
}

func (m *MockStore) LoadNotifications(ctx context.Context) []models.Notification {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return []models.Notification{}
	}
	return args.Get(0).([]models.Notification)
}

func (m *MockStore) SaveNotifications(ctx context.Context, notifs []models.Notification) error {
	args := m.Called(ctx, notifs)
	return args.Error(0)
}

func (m *MockStore) ResetDailyData(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// recordingBroadcaster captures everything the engine hands to the live feed.
type recordingBroadcaster struct {
	sent []models.Notification
}

func (b *recordingBroadcaster) Broadcast(n models.Notification) {
	b.sent = append(b.sent, n)
}
