package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-admin/internal/audit"
	"github.com/BruksfildServices01/dental-admin/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// AuditLogsHandler exposes the recent diagnostic entries kept in memory.
type AuditLogsHandler struct {
	recorder *audit.Recorder
}

func NewAuditLogsHandler(recorder *audit.Recorder) *AuditLogsHandler {
	return &AuditLogsHandler{recorder: recorder}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	// --------------------------------------------------
	// Newest first, optional filters
	// --------------------------------------------------

	entries := h.recorder.Entries()
	logs := make([]models.AuditLog, 0, min(limit, len(entries)))
	for i := len(entries) - 1; i >= 0 && len(logs) < limit; i-- {
		e := entries[i]
		if action != "" && e.Action != action {
			continue
		}
		if entity != "" && e.Entity != entity {
			continue
		}
		logs = append(logs, e)
	}

	c.JSON(http.StatusOK, gin.H{
		"limit": limit,
		"total": len(logs),
		"logs":  logs,
	})
}
