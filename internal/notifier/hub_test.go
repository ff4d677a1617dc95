package notifier_test

import (
	"testing"
	"time"

	"vitre/backend/internal/models"
	"vitre/backend/internal/notifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// settle gives the hub's goroutine a moment to process channel traffic.
func settle() { time.Sleep(20 * time.Millisecond) }

// TestHub_RegisterAndBroadcast verifies every registered client receives a
// broadcast notification.
func TestHub_RegisterAndBroadcast(t *testing.T) {
	// Arrange
	hub := notifier.NewHub()
	go hub.Run()
	ali := newMockClient("Ali")
	ayoub := newMockClient("Ayoub")
	hub.RegisterCh <- ali
	hub.RegisterCh <- ayoub
	settle()

	// Act
	n := models.Notification{ID: "n1", Message: "Ali marked Room 104 as Done", Type: models.NotifInfo}
	hub.Broadcast(n)
	settle()

	// Assert
	aliGot := ali.drain()
	ayoubGot := ayoub.drain()
	require.Len(t, aliGot, 1)
	require.Len(t, ayoubGot, 1)
	assert.Equal(t, "n1", aliGot[0].ID)
	assert.Equal(t, "n1", ayoubGot[0].ID)
}

// TestHub_Unregister verifies an unregistered client is closed and stops
// receiving broadcasts.
func TestHub_Unregister(t *testing.T) {
	// Arrange
	hub := notifier.NewHub()
	go hub.Run()
	ali := newMockClient("Ali")
	hub.RegisterCh <- ali
	settle()

	// Act
	hub.UnregisterCh <- ali
	settle()
	hub.Broadcast(models.Notification{ID: "n1"})
	settle()

	// Assert
	assert.True(t, ali.closed.Load(), "Unregistered client should be closed")
	assert.Empty(t, ali.drain())
}

// TestHub_ReplacesConnectionForSameUser verifies a fresh connection for the
// same username supersedes the old one.
func TestHub_ReplacesConnectionForSameUser(t *testing.T) {
	// Arrange
	hub := notifier.NewHub()
	go hub.Run()
	stale := newMockClient("Youness")
	fresh := newMockClient("Youness")
	hub.RegisterCh <- stale
	hub.RegisterCh <- fresh
	settle()

	// Act
	hub.Broadcast(models.Notification{ID: "n1"})
	settle()

	// Assert
	assert.True(t, stale.closed.Load(), "Stale connection should be closed on replacement")
	assert.Empty(t, stale.drain())
	require.Len(t, fresh.drain(), 1)
}

// TestHub_UnregisterIgnoresSupersededClient verifies that the late unregister
// from a replaced connection does not evict its successor.
func TestHub_UnregisterIgnoresSupersededClient(t *testing.T) {
	// Arrange
	hub := notifier.NewHub()
	go hub.Run()
	stale := newMockClient("Ali")
	fresh := newMockClient("Ali")
	hub.RegisterCh <- stale
	hub.RegisterCh <- fresh
	settle()

	// Act - the stale connection's read pump reports it went away
	hub.UnregisterCh <- stale
	settle()
	hub.Broadcast(models.Notification{ID: "n1"})
	settle()

	// Assert
	assert.False(t, fresh.closed.Load())
	require.Len(t, fresh.drain(), 1)
}
