package notifier_test

import (
	"sync/atomic"

	"vitre/backend/internal/models"
)

// mockClient is a test double for the notifier.Client interface. Close is
// called from the hub goroutine, so the flag is atomic.
type mockClient struct {
	username string
	send     chan models.Notification
	closed   atomic.Bool
}

func newMockClient(username string) *mockClient {
	return &mockClient{
		username: username,
		send:     make(chan models.Notification, 10),
	}
}

func (c *mockClient) GetUsername() string                        { return c.username }
func (c *mockClient) GetSendChannel() chan<- models.Notification { return c.send }

func (c *mockClient) Run() {}

func (c *mockClient) Close() {
	c.closed.Store(true)
}

// drain collects everything delivered so far without blocking.
func (c *mockClient) drain() []models.Notification {
	var out []models.Notification
	for {
		select {
		case n := <-c.send:
			out = append(out, n)
		default:
			return out
		}
	}
}
