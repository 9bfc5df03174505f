package booking

import (
	"context"
	"time"

	"painterbook/models"
	"painterbook/services/scheduling"

	"go.uber.org/zap"
)

// DefaultMaxAttempts bounds how often a request re-runs selection after
// losing a race for the chosen painter.
const DefaultMaxAttempts = 3

// BookingStore is the slice of the booking repository the service writes through.
type BookingStore interface {
	CreateIfFree(ctx context.Context, booking *models.Booking) error
	Query(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
}

// ReminderScheduler queues the painter reminder for a confirmed booking.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, booking models.Booking) error
}

// BookingService handles customer booking requests.
type BookingService interface {
	RequestBooking(ctx context.Context, customerID string, window models.TimeWindow) (*models.Booking, error)
	CustomerBookings(ctx context.Context, customerID string) ([]models.Booking, error)
	PainterBookings(ctx context.Context, painterID string) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Engine   scheduling.MatchingEngine
	Bookings BookingStore
	// Reminders is optional; bookings succeed without it.
	Reminders       ReminderScheduler
	SuggestionLimit int
	MaxAttempts     int
	Logger          *zap.Logger
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

func (s *DefaultBookingService) maxAttempts() int {
	if s.MaxAttempts > 0 {
		return s.MaxAttempts
	}
	return DefaultMaxAttempts
}

func (s *DefaultBookingService) suggestionLimit() int {
	if s.SuggestionLimit > 0 {
		return s.SuggestionLimit
	}
	return scheduling.DefaultSuggestionLimit
}

// suggestionMessage tells the customer how far a suggestion is from what they asked for.
func suggestionMessage(offset time.Duration) string {
	if offset < 24*time.Hour {
		return "Available same day"
	}
	return "Available on different day"
}
