package handlers

import (
	"errors"
	"net/http"

	"painterbook/middleware"
	"painterbook/models"
	"painterbook/services/booking"
	"painterbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingRequestHandler handles POST /bookings/booking-request. A
// request nobody can take answers 409 with alternative slots.
func (h *BookingHandler) CreateBookingRequestHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "startTime and endTime are required", err)
		return
	}

	customerID := middleware.CustomerID(c)
	window := models.TimeWindow{Start: req.StartTime, End: req.EndTime}
	created, err := h.Service.RequestBooking(c.Request.Context(), customerID, window)

	var noPainter *booking.NoPainterError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, created.Response())
	case errors.As(err, &noPainter):
		logger.Info("No painter available", zap.String("customerID", customerID), zap.Int("suggestions", len(noPainter.Suggestions)))
		c.JSON(http.StatusConflict, models.BookingErrorResponse{
			Error:       "No painters are available for the requested time slot.",
			Suggestions: noPainter.Suggestions,
		})
	case errors.Is(err, models.ErrInvalidWindow):
		utils.JSONError(c, http.StatusBadRequest, "startTime must be before endTime", err)
	case errors.Is(err, booking.ErrCustomerOverlap):
		utils.JSONError(c, http.StatusBadRequest, "You already have a booking that overlaps with this time slot. Please choose a different time.", nil)
	case errors.Is(err, booking.ErrMissingCustomer):
		utils.JSONError(c, http.StatusUnauthorized, "Missing "+middleware.CustomerIDHeader+" header", nil)
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", err)
	}
}

// GetCustomerBookingsHandler handles GET /bookings/me.
func (h *BookingHandler) GetCustomerBookingsHandler(c *gin.Context) {
	list, err := h.Service.CustomerBookings(c.Request.Context(), middleware.CustomerID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", err)
		return
	}

	resp := make([]models.BookingResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, b.Response())
	}
	c.JSON(http.StatusOK, resp)
}

// GetPainterBookingsHandler handles GET /bookings/painter.
func (h *BookingHandler) GetPainterBookingsHandler(c *gin.Context) {
	list, err := h.Service.PainterBookings(c.Request.Context(), middleware.PainterID(c))
	if errors.Is(err, booking.ErrMissingPainter) {
		utils.JSONError(c, http.StatusBadRequest, "painterId is required", err)
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch painter bookings", err)
		return
	}

	resp := make([]models.PainterBookingResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, b.PainterResponse())
	}
	c.JSON(http.StatusOK, resp)
}
