package handlers

import (
	"painterbook/middleware"
	"painterbook/services/availability"
	"painterbook/services/booking"
	"painterbook/services/scheduling"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers and the middleware they need.
type HandlerBundle struct {
	// Availability endpoints
	CreateAvailabilityHandler  gin.HandlerFunc
	PainterAvailabilityHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingRequestHandler gin.HandlerFunc
	CustomerBookingsHandler     gin.HandlerFunc
	PainterBookingsHandler      gin.HandlerFunc

	// Scheduling endpoints
	CheckConflictHandler       gin.HandlerFunc
	SuggestAlternativesHandler gin.HandlerFunc

	// Idempotency guards booking creation; nil cache disables it.
	Idempotency gin.HandlerFunc
}

// NewHandlerBundle wires the handlers to their services.
func NewHandlerBundle(
	availabilitySvc availability.AvailabilityService,
	bookingSvc booking.BookingService,
	engine scheduling.MatchingEngine,
	idempotency gin.HandlerFunc,
) *HandlerBundle {
	ah := NewAvailabilityHandler(availabilitySvc)
	bh := NewBookingHandler(bookingSvc)
	sh := NewSchedulingHandler(engine)
	if idempotency == nil {
		idempotency = middleware.Idempotency(nil, 0)
	}

	return &HandlerBundle{
		CreateAvailabilityHandler:   ah.CreateAvailabilityHandler,
		PainterAvailabilityHandler:  ah.GetPainterAvailabilityHandler,
		CreateBookingRequestHandler: bh.CreateBookingRequestHandler,
		CustomerBookingsHandler:     bh.GetCustomerBookingsHandler,
		PainterBookingsHandler:      bh.GetPainterBookingsHandler,
		CheckConflictHandler:        sh.CheckConflictHandler,
		SuggestAlternativesHandler:  sh.SuggestAlternativesHandler,
		Idempotency:                 idempotency,
	}
}
