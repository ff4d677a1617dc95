package handler

import (
	"errors"
	"net/http"

	"vitre/backend/internal/analysis"
	"vitre/backend/internal/lifecycle"
	"vitre/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ListRooms returns the current collection in display order: priority
// descending, then room number ascending.
func (h *Handler) ListRooms(c *gin.Context) {
	c.JSON(http.StatusOK, analysis.SortRooms(h.Engine.Rooms()))
}

type createRoomRequest struct {
	Number   string          `json:"number" binding:"required"`
	Priority models.Priority `json:"priority"`
}

// CreateRoom adds a room to the roster. Admin only. An omitted priority
// defaults to Normal, matching the admin form.
func (h *Handler) CreateRoom(c *gin.Context) {
	if _, ok := adminUser(c); !ok {
		return
	}

	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "number is required"})
		return
	}
	if req.Priority == "" {
		req.Priority = models.PriorityNormal
	}
	if !req.Priority.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown priority"})
		return
	}

	room := h.Engine.AddRoom(c.Request.Context(), req.Number, req.Priority)
	c.JSON(http.StatusCreated, room)
}

// DeleteRoom removes a room from the roster. Admin only.
func (h *Handler) DeleteRoom(c *gin.Context) {
	if _, ok := adminUser(c); !ok {
		return
	}

	if err := h.Engine.DeleteRoom(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, lifecycle.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete room"})
		return
	}
	c.Status(http.StatusNoContent)
}

type updateStatusRequest struct {
	Status models.RoomStatus `json:"status" binding:"required"`
}

// UpdateRoomStatus applies a status transition on behalf of the acting user
// and returns the updated room.
func (h *Handler) UpdateRoomStatus(c *gin.Context) {
	actor, ok := actingUser(c)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	room, err := h.Engine.ApplyTransition(c.Request.Context(), c.Param("id"), req.Status, actor)
	if err != nil {
		if errors.Is(err, lifecycle.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update room"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// ListNotifications returns the persisted notification log, newest first.
func (h *Handler) ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.Engine.Notifications())
}
