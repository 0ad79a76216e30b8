package handlers

import (
	"errors"
	"net/http"

	"wanderly/middleware"
	"wanderly/services/notification"
	"wanderly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes the notification inbox over HTTP.
type NotificationHandler struct {
	Service notification.NotificationService
	Logger  *zap.Logger
}

// NewNotificationHandler returns a NotificationHandler.
func NewNotificationHandler(svc notification.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{Service: svc, Logger: logger}
}

// GetMyNotifications handles GET /api/notifications.
func (h *NotificationHandler) GetMyNotifications(c *gin.Context) {
	notifs, err := h.Service.GetUserNotifications(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		h.Logger.Error("Failed to load notifications", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load notifications", "unexpected error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifs})
}

// MarkRead handles POST /api/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	err := h.Service.MarkNotificationRead(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"read": true})
	case errors.Is(err, notification.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Notification not found", err.Error())
	case errors.Is(err, notification.ErrNotAuthorized):
		utils.JSONError(c, http.StatusForbidden, "Not your notification", err.Error())
	default:
		h.Logger.Error("Failed to mark notification read", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to mark notification read", "unexpected error")
	}
}
