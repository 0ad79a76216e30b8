package handlers

import (
	"net/http"

	"wanderly/middleware"
	"wanderly/models"
	"wanderly/services/booking"
	"wanderly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler returns a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	id, err := h.Service.CreateBooking(c.Request.Context(), middleware.Actor(c), input)
	if err != nil {
		h.respondError(c, "Failed to create booking", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateBookingStatus handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var input struct {
		Status  models.BookingStatus `json:"status"`
		Message string               `json:"message,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	err := h.Service.UpdateBookingStatus(c.Request.Context(), middleware.Actor(c), c.Param("id"), input.Status, input.Message)
	if err != nil {
		h.respondError(c, "Failed to update booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	err := h.Service.CancelBooking(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		h.respondError(c, "Failed to cancel booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.BookingCancelled})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "Failed to load booking", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetMyBookings handles GET /api/bookings/mine — bookings the caller requested.
func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	bookings, err := h.Service.GetUserBookings(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		h.respondError(c, "Failed to load bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetOwnerBookings handles GET /api/bookings/owned — bookings against the
// caller's listings.
func (h *BookingHandler) GetOwnerBookings(c *gin.Context) {
	bookings, err := h.Service.GetOwnerBookings(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		h.respondError(c, "Failed to load bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) respondError(c *gin.Context, msg string, err error) {
	switch {
	case booking.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, msg, err.Error())
	case booking.IsNotAuthorized(err):
		utils.JSONError(c, http.StatusForbidden, msg, err.Error())
	case booking.IsInvalidTransition(err):
		utils.JSONError(c, http.StatusConflict, msg, err.Error())
	case booking.IsInvalidInput(err):
		utils.JSONError(c, http.StatusBadRequest, msg, err.Error())
	default:
		h.Logger.Error(msg, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, msg, "unexpected error")
	}
}
