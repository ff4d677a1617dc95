package notifier

import "vitre/backend/internal/models"

// Client is one live subscriber to the notification feed. It abstracts the
// underlying connection so the hub can manage transports uniformly and tests
// can register doubles.
type Client interface {
	// GetUsername returns the roster identity the connection belongs to.
	GetUsername() string

	// GetSendChannel returns the channel the hub delivers notifications on.
	GetSendChannel() chan<- models.Notification

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts down the client's connection and delivery channel.
	Close()
}
