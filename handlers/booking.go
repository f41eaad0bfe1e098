package handlers

import (
	"net/http"
	"strconv"

	"stellartours/models"
	bookingService "stellartours/services/booking"
	"stellartours/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the booking lifecycle endpoints. The owning
// username is always taken from the session identity set by the auth
// middleware, never from the request body.
type BookingHandler struct {
	Service bookingService.BookingService
}

func NewBookingHandler(svc bookingService.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	username := c.GetString("username")

	bookings, err := h.Service.ListBookings(username)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.Service.GetBooking(c.GetString("username"), id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var in models.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking data", "errors": err.Error()})
		return
	}

	username := c.GetString("username")
	b, err := h.Service.CreateBooking(username, in)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", err.Error())
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateBookingHandler handles PATCH /api/bookings/:id.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var in models.UpdateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking data", "errors": err.Error()})
		return
	}

	b, err := h.Service.UpdateBooking(c.GetString("username"), id, in)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteBooking(c.GetString("username"), id); err != nil {
		respondBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid booking ID"})
		return 0, false
	}
	return uint(id), true
}

func respondBookingError(c *gin.Context, err error) {
	switch err {
	case bookingService.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
	case bookingService.ErrAccessDenied:
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process booking", err.Error())
	}
}
