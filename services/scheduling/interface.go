package scheduling

import (
	"context"
	"time"

	"painterbook/models"

	"go.uber.org/zap"
)

// AvailabilityQuerier is the read side of the availability store the engine needs.
type AvailabilityQuerier interface {
	Query(ctx context.Context, filter models.AvailabilityFilter) ([]models.Availability, error)
}

// BookingQuerier is the read side of the booking store the engine needs.
type BookingQuerier interface {
	Query(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	Count(ctx context.Context, painterID string, status models.BookingStatus) (int64, error)
}

// MatchingEngine matches requested windows to painters.
type MatchingEngine interface {
	// FindProviderFor returns the painter to book for window, or
	// ErrNoProviderAvailable when nobody is free for all of it.
	FindProviderFor(ctx context.Context, window models.TimeWindow) (*models.ProviderMatch, error)
	// SuggestAlternatives returns at most limit bookable slots of the same
	// length, nearest first with same-day slots ahead of other days.
	SuggestAlternatives(ctx context.Context, window models.TimeWindow, limit int) ([]models.Suggestion, error)
	// CheckConflict reports whether the painter has a booking conflicting with window.
	CheckConflict(ctx context.Context, painterID string, window models.TimeWindow) (bool, error)
}

// DefaultMatchingEngine implements MatchingEngine over the store contracts.
// It holds no state between calls. Store errors are returned unchanged.
type DefaultMatchingEngine struct {
	Availability AvailabilityQuerier
	Bookings     BookingQuerier
	Weights      Weights
	Logger       *zap.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
}

func (e *DefaultMatchingEngine) now() time.Time {
	if e.Clock != nil {
		return e.Clock()
	}
	return time.Now()
}

func (e *DefaultMatchingEngine) logger() *zap.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return zap.L()
}

func (e *DefaultMatchingEngine) weights() Weights {
	return e.Weights.withDefaults()
}
