package handler

import (
	"net/http"

	"vitre/backend/internal/models"
	"vitre/backend/internal/notifier"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The backend serves a single known front-end; tighten before exposing
	// it anywhere else.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the connection and subscribes it to the live
// notification feed. The subscriber identifies as a roster user via the
// username query parameter.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	username := c.Query("username")
	user, ok := models.FindUser(username)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown user"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &notifier.WebSocketClient{
		Hub:      h.Hub,
		Username: user.Username,
		Conn:     conn,
		Send:     make(chan models.Notification, 64),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
