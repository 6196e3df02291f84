package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
)

type NotificationHandler struct {
	feed notify.Feed
}

func NewNotificationHandler(feed notify.Feed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// List returns the newest notifications first; ?limit= caps the count.
func (h *NotificationHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	list, err := h.feed.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		httperr.Internal(c, "notifications_unavailable", "Could not load notifications.")
		return
	}
	if len(list) > limit {
		list = list[:limit]
	}
	if list == nil {
		list = []notify.Notification{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  list,
		"total": len(list),
	})
}

func (h *NotificationHandler) Dismiss(c *gin.Context) {
	err := h.feed.Dismiss(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, notify.ErrNotFound):
		httperr.NotFound(c, "notification_not_found", "Notification not found.")
	case err != nil:
		_ = c.Error(err)
		httperr.Internal(c, "notifications_unavailable", "Could not dismiss the notification.")
	default:
		c.Status(http.StatusNoContent)
	}
}
