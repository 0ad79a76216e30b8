package handlers

import (
	"errors"
	"net/http"

	"wanderly/middleware"
	"wanderly/services/messaging"
	"wanderly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessagingHandler exposes direct messages over HTTP.
type MessagingHandler struct {
	Service messaging.MessagingService
	Logger  *zap.Logger
}

// NewMessagingHandler returns a MessagingHandler.
func NewMessagingHandler(svc messaging.MessagingService, logger *zap.Logger) *MessagingHandler {
	return &MessagingHandler{Service: svc, Logger: logger}
}

// SendMessage handles POST /api/messages.
func (h *MessagingHandler) SendMessage(c *gin.Context) {
	var input struct {
		ReceiverID string `json:"receiverId"`
		Content    string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	id, err := h.Service.SendMessage(c.Request.Context(), middleware.Actor(c), input.ReceiverID, input.Content)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"id": id})
	case errors.Is(err, messaging.ErrEmptyMessage), errors.Is(err, messaging.ErrSelfMessage):
		utils.JSONError(c, http.StatusBadRequest, "Failed to send message", err.Error())
	default:
		h.Logger.Error("Failed to send message", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send message", "unexpected error")
	}
}

// GetMessages handles GET /api/messages/:userId — the thread with one user.
func (h *MessagingHandler) GetMessages(c *gin.Context) {
	msgs, err := h.Service.GetMessages(c.Request.Context(), middleware.Actor(c), c.Param("userId"))
	if err != nil {
		h.Logger.Error("Failed to load messages", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load messages", "unexpected error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// GetConversations handles GET /api/conversations.
func (h *MessagingHandler) GetConversations(c *gin.Context) {
	convos, err := h.Service.GetConversations(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		h.Logger.Error("Failed to load conversations", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load conversations", "unexpected error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversations": convos})
}

// MarkMessagesRead handles POST /api/messages/:userId/read.
func (h *MessagingHandler) MarkMessagesRead(c *gin.Context) {
	if err := h.Service.MarkMessagesRead(c.Request.Context(), middleware.Actor(c), c.Param("userId")); err != nil {
		h.Logger.Error("Failed to mark messages read", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to mark messages read", "unexpected error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"read": true})
}

// UnreadCount handles GET /api/messages/unread.
func (h *MessagingHandler) UnreadCount(c *gin.Context) {
	count, err := h.Service.UnreadCount(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		h.Logger.Error("Failed to count unread messages", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to count unread messages", "unexpected error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}
