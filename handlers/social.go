package handlers

import (
	"errors"
	"net/http"

	"wanderly/middleware"
	"wanderly/models"
	"wanderly/services/social"
	"wanderly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SocialHandler exposes swipe-to-match over HTTP.
type SocialHandler struct {
	Service social.SocialService
	Logger  *zap.Logger
}

// NewSocialHandler returns a SocialHandler.
func NewSocialHandler(svc social.SocialService, logger *zap.Logger) *SocialHandler {
	return &SocialHandler{Service: svc, Logger: logger}
}

// RecordSwipe handles POST /api/swipes. The response carries the match when
// the swipe completed one.
func (h *SocialHandler) RecordSwipe(c *gin.Context) {
	var input struct {
		SwipedID string             `json:"swipedId"`
		Action   models.SwipeAction `json:"action"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	match, err := h.Service.RecordSwipe(c.Request.Context(), middleware.Actor(c), input.SwipedID, input.Action)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"matched": match != nil, "match": match})
	case errors.Is(err, social.ErrSelfSwipe), errors.Is(err, social.ErrInvalidAction):
		utils.JSONError(c, http.StatusBadRequest, "Failed to record swipe", err.Error())
	default:
		h.Logger.Error("Failed to record swipe", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to record swipe", "unexpected error")
	}
}

// GetSwipeableProfiles handles GET /api/swipes/profiles.
func (h *SocialHandler) GetSwipeableProfiles(c *gin.Context) {
	profiles, err := h.Service.GetSwipeableProfiles(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		h.Logger.Error("Failed to load profiles", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load profiles", "unexpected error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// GetMyMatches handles GET /api/matches.
func (h *SocialHandler) GetMyMatches(c *gin.Context) {
	profiles, err := h.Service.GetUserMatches(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		h.Logger.Error("Failed to load matches", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load matches", "unexpected error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": profiles})
}
