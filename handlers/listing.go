package handlers

import (
	"errors"
	"net/http"

	"wanderly/middleware"
	"wanderly/models"
	"wanderly/services/listing"
	"wanderly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListingHandler exposes bookable offerings over HTTP.
type ListingHandler struct {
	Service listing.ListingService
	Logger  *zap.Logger
}

// NewListingHandler returns a ListingHandler.
func NewListingHandler(svc listing.ListingService, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{Service: svc, Logger: logger}
}

// CreateListing handles POST /api/listings.
func (h *ListingHandler) CreateListing(c *gin.Context) {
	var input listing.CreateListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	l, err := h.Service.CreateListing(c.Request.Context(), middleware.Actor(c), input)
	if err != nil {
		h.respondError(c, "Failed to create listing", err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

// GetListing handles GET /api/listings/:id.
func (h *ListingHandler) GetListing(c *gin.Context) {
	l, err := h.Service.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "Failed to load listing", err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// UpdateListing handles PATCH /api/listings/:id.
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.UpdateListing(c.Request.Context(), middleware.Actor(c), c.Param("id"), fields); err != nil {
		h.respondError(c, "Failed to update listing", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DeleteListing handles DELETE /api/listings/:id.
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	if err := h.Service.DeleteListing(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		h.respondError(c, "Failed to delete listing", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListByType handles GET /api/listings?type=stay.
func (h *ListingHandler) ListByType(c *gin.Context) {
	listings, err := h.Service.ListByType(c.Request.Context(), models.ServiceType(c.Query("type")))
	if err != nil {
		h.respondError(c, "Failed to load listings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

// ListMine handles GET /api/listings/mine.
func (h *ListingHandler) ListMine(c *gin.Context) {
	listings, err := h.Service.ListMine(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		h.respondError(c, "Failed to load listings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

func (h *ListingHandler) respondError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, listing.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, msg, err.Error())
	case errors.Is(err, listing.ErrNotOwner):
		utils.JSONError(c, http.StatusForbidden, msg, err.Error())
	case errors.Is(err, listing.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, msg, err.Error())
	default:
		h.Logger.Error(msg, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, msg, "unexpected error")
	}
}
