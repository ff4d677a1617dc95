// Package notifier fans notifications out to connected front-end clients.
// It is the live counterpart of the persisted notification log: purely
// observational, with no effect on lifecycle state.
package notifier

import (
	"log"

	"vitre/backend/internal/models"
)

// Hub tracks one client per username and broadcasts every emitted
// notification to all of them. All state is owned by the Run goroutine;
// registration, unregistration and broadcast go through channels.
type Hub struct {
	Clients map[string]Client

	BroadcastCh  chan models.Notification
	RegisterCh   chan Client
	UnregisterCh chan Client
}

func NewHub() *Hub {
	return &Hub{
		Clients:      make(map[string]Client),
		BroadcastCh:  make(chan models.Notification, 64),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
	}
}

// Run is the hub's main loop. Start it in its own goroutine before serving.
func (h *Hub) Run() {
	log.Println("Notification hub started.")
	for {
		select {
		case client := <-h.RegisterCh:
			// A fresh connection for the same user replaces the old one.
			if old, ok := h.Clients[client.GetUsername()]; ok {
				old.Close()
			}
			h.Clients[client.GetUsername()] = client
			log.Printf("Notification client registered: %s", client.GetUsername())

		case client := <-h.UnregisterCh:
			if current, ok := h.Clients[client.GetUsername()]; ok && current == client {
				delete(h.Clients, client.GetUsername())
				client.Close()
				log.Printf("Notification client unregistered: %s", client.GetUsername())
			}

		case n := <-h.BroadcastCh:
			for username, client := range h.Clients {
				select {
				case client.GetSendChannel() <- n:
				default:
					// Slow consumer; drop rather than stall the feed.
					log.Printf("Dropping notification for slow client %s", username)
				}
			}
		}
	}
}

// Broadcast queues a notification for delivery to every connected client.
// Non-blocking: if the hub's queue is full the notification is dropped, which
// is acceptable for a cosmetic feed backed by the persisted log.
func (h *Hub) Broadcast(n models.Notification) {
	select {
	case h.BroadcastCh <- n:
	default:
		log.Println("Notification hub queue full, dropping broadcast")
	}
}
