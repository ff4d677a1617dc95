package handler

import (
	"net/http"

	"vitre/backend/internal/lifecycle"
	"vitre/backend/internal/models"
	"vitre/backend/internal/notifier"

	"github.com/gin-gonic/gin"
)

// Handler holds the collaborators the HTTP layer dispatches into. Every route
// maps 1:1 onto a lifecycle operation or a pure derivation; no domain logic
// lives here.
type Handler struct {
	Engine *lifecycle.Engine
	Hub    *notifier.Hub
}

func NewHandler(engine *lifecycle.Engine, hub *notifier.Hub) *Handler {
	return &Handler{Engine: engine, Hub: hub}
}

// RegisterRoutes wires all routes onto the router.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/config", h.GetConfig)
	r.GET("/users", h.ListUsers)
	r.GET("/rooms", h.ListRooms)
	r.POST("/rooms", h.CreateRoom)
	r.DELETE("/rooms/:id", h.DeleteRoom)
	r.POST("/rooms/:id/status", h.UpdateRoomStatus)
	r.GET("/notifications", h.ListNotifications)
	r.GET("/stats", h.GetStats)
	r.GET("/report.csv", h.ExportReport)
	r.POST("/admin/reset", h.ResetDay)
	r.GET("/ws", h.ServeWebSocket)
}

// actingUser resolves the X-Username header against the static roster. The
// identity is picked, not authenticated; an unknown name aborts with 400.
func actingUser(c *gin.Context) (models.User, bool) {
	username := c.GetHeader("X-Username")
	if username == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "X-Username header missing"})
		return models.User{}, false
	}
	user, ok := models.FindUser(username)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown user"})
		return models.User{}, false
	}
	return user, true
}

// adminUser is actingUser plus a role gate for roster administration.
func adminUser(c *gin.Context) (models.User, bool) {
	user, ok := actingUser(c)
	if !ok {
		return models.User{}, false
	}
	if !user.IsAdmin() {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
		return models.User{}, false
	}
	return user, true
}
