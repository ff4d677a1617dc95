package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"time"

	"vitre/backend/internal/analysis"
	"vitre/backend/internal/config"
	"vitre/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GetConfig exposes the display constants the front-end needs.
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"appName":        config.AppName,
		"toastDismissMs": config.ToastAutoDismiss.Milliseconds(),
	})
}

// ListUsers returns the static roster used as the identity pick list.
func (h *Handler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, models.Users)
}

// GetStats returns the aggregate view over the current roster.
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, analysis.ComputeStats(h.Engine.Rooms()))
}

// ResetDay clears every room's work state for a new day. Admin only. The
// roster itself is preserved; the response carries it back for convenience.
func (h *Handler) ResetDay(c *gin.Context) {
	if _, ok := adminUser(c); !ok {
		return
	}
	h.Engine.ResetDay(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"message": "Daily schedule has been reset.",
		"rooms":   h.Engine.Rooms(),
	})
}

// ExportReport streams the daily cleaning report as CSV, one row per room in
// display order.
func (h *Handler) ExportReport(c *gin.Context) {
	now := time.Now()
	filename := fmt.Sprintf("vitre_report_%s.csv", now.Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	w := csv.NewWriter(c.Writer)
	if err := w.Write(analysis.ReportHeader); err != nil {
		log.Printf("ERROR: Failed to write report header: %v", err)
		return
	}
	if err := w.WriteAll(analysis.ReportRows(h.Engine.Rooms(), now.Location())); err != nil {
		log.Printf("ERROR: Failed to write report rows: %v", err)
	}
	w.Flush()
}
