package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/travelhub/booking-backend-go/internal/middleware"
	"github.com/travelhub/booking-backend-go/internal/models"
	"github.com/travelhub/booking-backend-go/internal/service"
	"github.com/travelhub/booking-backend-go/pkg/response"
)

// BookingHandler handles HTTP requests for bookings. Routes sit behind middleware.Auth.
type BookingHandler struct {
	bookings *service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// CreateBooking handles POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	booking, err := h.bookings.CreateBooking(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, booking)
}

// ListBookings handles GET /api/v1/bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookings.ListBookings(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, gin.H{
		"data":  bookings,
		"total": len(bookings),
	})
}

// GetBooking handles GET /api/v1/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookings.GetBooking(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, booking)
}
