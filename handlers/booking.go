package handlers

import (
	"net/http"

	"tourguide/models"
	"tourguide/services/booking"
	"tourguide/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(s booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: s}
}

// ListBookings handles GET /bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	bookings, err := h.Service.ListForUser(c.Request.Context(), p)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.BookingDetail{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetBooking handles GET /bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	detail, err := h.Service.GetByID(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": detail})
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req models.BookingCreateRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.Service.Create(c.Request.Context(), p, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.GetLogger().Info("Booking created", zap.String("bookingId", created.ID), zap.String("userId", p.ID))
	c.JSON(http.StatusCreated, gin.H{"message": "Booking created successfully", "booking": created})
}

// UpdateBooking handles PUT /bookings/:id.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var req models.BookingUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), p, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated successfully", "booking": updated})
}

// CancelBooking handles DELETE /bookings/:id. The record is kept with bookingStatus cancelled.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	p, ok := requirePrincipal(c)
	if !ok {
		return
	}
	cancelled, err := h.Service.Cancel(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.GetLogger().Info("Booking cancelled", zap.String("bookingId", cancelled.ID), zap.String("by", p.ID))
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully", "booking": cancelled})
}
